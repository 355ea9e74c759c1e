package basic

import (
	"github.com/emirpasic/gods/v2/utils"
)

// ArrayList 基于切片的动态数组，容量不足时翻倍扩容，从不缩容
type ArrayList[E any] struct {
	data []E // len(data) 即容量，[0, size) 为有效元素
	size int
}

// NewArrayList creates an empty list with the default capacity of 10.
func NewArrayList[E any]() *ArrayList[E] {
	return NewArrayListWithConfig[E](NewConfig())
}

func NewArrayListWithConfig[E any](config *Config) *ArrayList[E] {
	return &ArrayList[E]{data: make([]E, config.initialCapacity())}
}

// Add appends v, growing the backing storage first when it is full.
func (l *ArrayList[E]) Add(v E) {
	l.ensureCapacity()
	l.data[l.size] = v
	l.size++
}

// AddByIndex inserts v at index, shifting [index, size) right by one.
// index == Size() appends.
func (l *ArrayList[E]) AddByIndex(index int, v E) error {
	if err := checkPositionIndex("arrayList.AddByIndex", index, l.size); err != nil {
		return err
	}
	l.ensureCapacity()
	copy(l.data[index+1:l.size+1], l.data[index:l.size])
	l.data[index] = v
	l.size++
	return nil
}

func (l *ArrayList[E]) Get(index int) (E, error) {
	if err := checkElementIndex("arrayList.Get", index, l.size); err != nil {
		var zero E
		return zero, err
	}
	return l.data[index], nil
}

// Remove deletes the element at index and returns it. The vacated trailing
// slot is zeroed so the list does not keep a stale reference.
func (l *ArrayList[E]) Remove(index int) (E, error) {
	var zero E
	if err := checkElementIndex("arrayList.Remove", index, l.size); err != nil {
		return zero, err
	}
	v := l.data[index]
	copy(l.data[index:l.size-1], l.data[index+1:l.size])
	l.size--
	l.data[l.size] = zero
	return v, nil
}

// Clear zeroes every slot; capacity is kept.
func (l *ArrayList[E]) Clear() {
	clear(l.data)
	l.size = 0
}

func (l *ArrayList[E]) Size() int {
	return l.size
}

func (l *ArrayList[E]) Capacity() int {
	return len(l.data)
}

func (l *ArrayList[E]) Empty() bool {
	return l.size == 0
}

// Values returns a copy of the live elements in order.
func (l *ArrayList[E]) Values() []E {
	values := make([]E, l.size)
	copy(values, l.data[:l.size])
	return values
}

// Loop 遍历，返回true继续，返回false停止
func (l *ArrayList[E]) Loop(callback func(index int, v E) bool) {
	for i := 0; i < l.size; i++ {
		if !callback(i, l.data[i]) {
			break
		}
	}
}

// Sort orders the list ascending by comparator using bubble sort. Passes
// repeat until one makes no swap, so an already sorted list costs a single
// pass.
func (l *ArrayList[E]) Sort(comparator utils.Comparator[E]) {
	for swapped := true; swapped; {
		swapped = false
		for i := 1; i < l.size; i++ {
			if comparator(l.data[i-1], l.data[i]) > 0 {
				l.data[i-1], l.data[i] = l.data[i], l.data[i-1]
				swapped = true
			}
		}
	}
}

func (l *ArrayList[E]) String() string {
	return join(l.data[:l.size], ", ")
}

// Iterator returns a cursor positioned before the first element.
func (l *ArrayList[E]) Iterator() *ArrayListIterator[E] {
	return &ArrayListIterator[E]{list: l, index: -1}
}

// ensureCapacity doubles the storage when the next write would not fit.
func (l *ArrayList[E]) ensureCapacity() {
	if l.size < len(l.data) {
		return
	}
	newCapacity := len(l.data) * 2
	if newCapacity == 0 {
		newCapacity = defaultInitialCapacity
	}
	data := make([]E, newCapacity)
	copy(data, l.data[:l.size])
	l.data = data
}
