package splay_test

import (
	"fmt"
	"strings"

	"github.com/npillmayer/splay"
)

func ExampleSet_NearBy() {
	set := splay.NewOrdered[int]()
	for i := 0; i < 44; i++ {
		set.Add(i)
	}
	fmt.Println(set.NearBy(33, 2, 2))
	fmt.Println(set.NearBy(-1, 2, 2))
	fmt.Println(set.NearBy(999, 2, 2))
	// Output:
	// [31 32 33 34 35]
	// [0 1 2]
	// [41 42 43]
}

func ExampleSet_Prune() {
	set := splay.NewOrdered[int]()
	for i := 0; i < 32; i++ {
		set.Add(i)
	}
	removed := set.Prune(15, nil)
	fmt.Println(removed, set.Len())
	// Output: 17 15
}

type task struct {
	splay.Hook[*task]
	id string
}

func ExampleIntrusive() {
	tasks, _ := splay.NewIntrusive(func(t *task) string { return t.id }, strings.Compare)
	handles := make(map[string]*task)
	for _, id := range []string{"write", "build", "test", "ship"} {
		t := &task{id: id}
		handles[id] = t
		tasks.Insert(t)
	}
	rank, _ := tasks.Rank(handles["test"])
	fmt.Println(rank)
	tasks.Remove(handles["build"])
	fmt.Println(tasks.AppendKeysTo(nil))
	// Output:
	// 2
	// [ship test write]
}
