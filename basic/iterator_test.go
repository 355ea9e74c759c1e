package basic

import (
	"testing"

	"github.com/emirpasic/gods/v2/containers"
	"github.com/stretchr/testify/assert"
)

func iterators(values ...int) map[string]containers.ReverseIteratorWithIndex[int] {
	a := NewArrayList[int]()
	l := NewLinkedList[int]()
	for _, v := range values {
		a.Add(v)
		l.Add(v)
	}
	return map[string]containers.ReverseIteratorWithIndex[int]{
		"ArrayList":  a.Iterator(),
		"LinkedList": l.Iterator(),
	}
}

func TestIteratorForwardBackward(t *testing.T) {
	for name, it := range iterators(10, 20, 30) {
		t.Run(name, func(t *testing.T) {
			var values, indexes []int
			for it.Next() {
				values = append(values, it.Value())
				indexes = append(indexes, it.Index())
			}
			assert.Equal(t, []int{10, 20, 30}, values)
			assert.Equal(t, []int{0, 1, 2}, indexes)
			assert.False(t, it.Next())

			values = values[:0]
			for it.Prev() {
				values = append(values, it.Value())
			}
			assert.Equal(t, []int{30, 20, 10}, values)
			assert.Equal(t, -1, it.Index())
		})
	}
}

func TestIteratorFirstLast(t *testing.T) {
	for name, it := range iterators(10, 20, 30) {
		t.Run(name, func(t *testing.T) {
			assert.True(t, it.Last())
			assert.Equal(t, 30, it.Value())
			assert.Equal(t, 2, it.Index())

			assert.True(t, it.First())
			assert.Equal(t, 10, it.Value())
			assert.True(t, it.Next())
			assert.True(t, it.Prev())
			assert.Equal(t, 10, it.Value())
		})
	}
}

func TestIteratorSeek(t *testing.T) {
	for name, it := range iterators(1, 2, 3, 4, 5, 6) {
		t.Run(name, func(t *testing.T) {
			even := func(index int, v int) bool { return v%2 == 0 }

			assert.True(t, it.NextTo(even))
			assert.Equal(t, 2, it.Value())
			assert.True(t, it.NextTo(even))
			assert.Equal(t, 4, it.Value())

			it.End()
			assert.True(t, it.PrevTo(even))
			assert.Equal(t, 6, it.Value())
			assert.Equal(t, 5, it.Index())

			assert.False(t, it.NextTo(func(int, int) bool { return false }))
		})
	}
}

func TestIteratorEmpty(t *testing.T) {
	for name, it := range iterators() {
		t.Run(name, func(t *testing.T) {
			assert.False(t, it.First())
			assert.False(t, it.Last())
			assert.False(t, it.Next())
			assert.Zero(t, it.Value())
		})
	}
}
