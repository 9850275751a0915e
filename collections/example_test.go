package collections_test

import (
	"fmt"

	"github.com/hasbyte1/go-macro-collections/collections"
)

func ExampleList_InsertArgs() {
	l := collections.NewList("A", "B", "C")
	if err := l.InsertArgs("2,X,Y"); err != nil {
		fmt.Println(err)
	}
	fmt.Println(l.All())
	// Output:
	// [A B X Y C]
}

func ExampleList_SpliceArgs() {
	l := collections.NewList("A", "B", "C", "D")
	fmt.Println(l.SpliceArgs("1,2").All())
	fmt.Println(l.SpliceArgs("2").All())
	// Output:
	// [B C]
	// [C D]
}

func ExampleList_First() {
	l := collections.NewList("A", "B", "C")
	for it := l.First(); !it.IsEnd(); it.Advance() {
		fmt.Println(it)
	}
	// Output:
	// A
	// B
	// C
}

func ExampleListIterator_Clone() {
	it := collections.NewList("A", "B", "C").First()
	clone := it.Clone()
	for it.Advance() {
	}
	fmt.Println(it, clone)
	// Output:
	// FALSE A
}

func ExampleMap_AddArgs() {
	m := collections.NewMap()
	_ = m.AddArgs(" b , 2 ")
	_ = m.AddArgs("a,1")
	for it := m.First(); !it.IsEnd(); it.Advance() {
		fmt.Println(it)
	}
	fmt.Println(m.AddArgs("c"))
	// Output:
	// (a, 1)
	// (b, 2)
	// collections: malformed argument: add needs exactly <key>,<value>: "c"
}

func ExampleStack() {
	s := collections.NewStack()
	s.Push("A")
	s.Push("B")
	v, _ := s.Pop()
	fmt.Println(v, s.Count())
	// Output:
	// B 1
}

func ExampleQueue() {
	q := collections.NewQueue()
	q.Push("A")
	q.Push("B")
	v, _ := q.Pop()
	fmt.Println(v, q.Count())
	// Output:
	// A 1
}
