package databoard_test

import (
	"fmt"

	"github.com/normanking/databoard/pkg/databoard"
)

// ExampleSet demonstrates basic value storage and retrieval on a
// standalone board.
func ExampleSet() {
	board := databoard.New()

	if _, err := databoard.Set(board, "greeting", "hello"); err != nil {
		fmt.Println("set failed:", err)
		return
	}

	v, err := databoard.Get[string](board, "greeting")
	if err != nil {
		fmt.Println("get failed:", err)
		return
	}
	fmt.Println(v)
	// Output: hello
}

// ExampleWithParent demonstrates autoremap: a child board created with
// WithParent transparently inherits entries that live on its parent.
func ExampleWithParent() {
	root := databoard.New()
	child := databoard.WithParent(root)

	if _, err := databoard.Set(root, "shared", 100); err != nil {
		fmt.Println("set failed:", err)
		return
	}

	v, err := databoard.Get[int](child, "shared")
	if err != nil {
		fmt.Println("get failed:", err)
		return
	}
	fmt.Println(v)
	// Output: 100
}

// ExampleGetMutRef demonstrates that several edits through one write
// guard only advance the sequence counter once.
func ExampleGetMutRef() {
	board := databoard.New()
	_, _ = databoard.Set(board, "counter", 0)

	guard, err := databoard.GetMutRef[int](board, "counter")
	if err != nil {
		fmt.Println("guard failed:", err)
		return
	}
	guard.Mutate(func(v *int) { *v++ })
	guard.Mutate(func(v *int) { *v++ })
	guard.Mutate(func(v *int) { *v++ })
	guard.Close()

	v, _ := databoard.Get[int](board, "counter")
	seq, _ := board.SequenceID("counter")
	fmt.Println(v, seq)
	// Output: 3 2
}
