package host_test

import (
	"testing"

	"github.com/hasbyte1/go-macro-collections/collections"
	"github.com/hasbyte1/go-macro-collections/host"
)

func TestBuffer_Order(t *testing.T) {
	tests := []struct {
		o    host.Object
		want []string
	}{
		{host.NewStack(collections.NewStack()), []string{"C", "B", "A"}},
		{host.NewQueue(collections.NewQueue()), []string{"A", "B", "C"}},
	}
	for _, tt := range tests {
		t.Run(tt.o.TypeName(), func(t *testing.T) {
			assertResult(t, call(t, tt.o, "IsEmpty", ""), "TRUE")
			for _, v := range []string{"A", "B", "C"} {
				assertResult(t, call(t, tt.o, "Push", v), "TRUE")
			}
			assertResult(t, call(t, tt.o, "Count", ""), "3")
			for _, w := range tt.want {
				assertResult(t, call(t, tt.o, "Peek", ""), w)
				assertResult(t, call(t, tt.o, "Pop", ""), w)
			}
			assertFalse(t, call(t, tt.o, "Pop", ""), collections.ErrEmptyCollection)
			assertFalse(t, call(t, tt.o, "Peek", ""), collections.ErrEmptyCollection)
			assertResult(t, call(t, tt.o, "IsEmpty", ""), "TRUE")
		})
	}
}

func TestBuffer_PushRejectsBlank(t *testing.T) {
	s := host.NewStack(collections.NewStack())
	assertFalse(t, call(t, s, "Push", "  "), collections.ErrMalformedArgument)
	assertFalse(t, call(t, s, "Push", ""), host.ErrMissingArgument)
	assertResult(t, call(t, s, "Count", ""), "0")
}

func TestBuffer_FromStringPushesButFails(t *testing.T) {
	q := host.NewQueue(collections.NewQueue())
	if q.FromString("A") {
		t.Fatal("queue FromString reports failure")
	}
	if q.FromString("") {
		t.Fatal("queue FromString reports failure")
	}
	if q.String() != "1" {
		t.Fatalf("String = %q; want 1", q.String())
	}
}
