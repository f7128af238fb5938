package eac

import "github.com/beevik/etree"

// attachOrWrap appends one element per item to parent. With a single item
// the element goes directly under parent; with more, all of them go under a
// containerTag element. The container is attached on the first successful
// build, so a failure on item 0 leaves parent unchanged.
//
// Iteration stops at the first build error, which is returned. Elements
// built before it stay attached.
func attachOrWrap[T any](
	parent *etree.Element,
	containerTag string,
	items []T,
	build func(i int, item T) (*etree.Element, error),
) error {
	if len(items) == 0 {
		return nil
	}

	target := parent

	var container *etree.Element
	if len(items) > 1 {
		container = etree.NewElement(containerTag)
		target = container
	}

	attached := container == nil

	for i, item := range items {
		el, err := build(i, item)
		if err != nil {
			return err
		}

		if !attached {
			parent.AddChild(container)
			attached = true
		}

		target.AddChild(el)
	}

	return nil
}
