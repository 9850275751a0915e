package collections_test

import (
	"strconv"
	"testing"

	"github.com/hasbyte1/go-macro-collections/collections"
)

func benchList(n int) *collections.List {
	l := collections.NewList()
	for i := 0; i < n; i++ {
		l.Append(strconv.Itoa(i))
	}
	return l
}

func BenchmarkList_Append(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchList(1000)
	}
}

func BenchmarkList_Walk(b *testing.B) {
	l := benchList(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for it := l.First(); !it.IsEnd(); it.Advance() {
			_, _ = it.Value()
		}
	}
}

func BenchmarkList_InsertArgs(b *testing.B) {
	for i := 0; i < b.N; i++ {
		l := benchList(100)
		_ = l.InsertArgs("50,a,b,c,d")
	}
}

func BenchmarkList_SpliceArgs(b *testing.B) {
	l := benchList(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.SpliceArgs("100,500")
	}
}

func BenchmarkSet_AddItems(b *testing.B) {
	for i := 0; i < b.N; i++ {
		s := collections.NewSet()
		s.AddItems("a,b,c,d,e,f,g,h,a,b")
	}
}

func BenchmarkMap_Find(b *testing.B) {
	m := collections.NewMap()
	for i := 0; i < 1000; i++ {
		m.Add(strconv.Itoa(i), "v")
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Find("500")
	}
}
