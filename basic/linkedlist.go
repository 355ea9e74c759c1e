package basic

import (
	"github.com/emirpasic/gods/v2/utils"
)

// 链表结构
type LinkedList[T any] struct {
	size  int      // 链表大小
	first *node[T] // 链表中第一个元素
	last  *node[T] // 链表中最后一个元素
}

// 链表中的元素结构，prev 只用于反向遍历
type node[T any] struct {
	data T
	prev *node[T]
	next *node[T]
}

// 创建一个空链表
func NewLinkedList[T any]() *LinkedList[T] {
	return &LinkedList[T]{}
}

// 追加一个元素
func (l *LinkedList[T]) Add(v T) {
	l.AddLast(v)
}

// 在最后追加一个元素
func (l *LinkedList[T]) AddLast(v T) {
	l.linkBefore(v, nil)
}

// 在开始位置追加一个元素
func (l *LinkedList[T]) AddFirst(v T) {
	l.linkBefore(v, l.first)
}

// AddByIndex inserts v so that it becomes element index. index == Size()
// appends.
func (l *LinkedList[T]) AddByIndex(index int, v T) error {
	if err := checkPositionIndex("linkedList.AddByIndex", index, l.size); err != nil {
		return err
	}
	if index == l.size {
		l.AddLast(v)
	} else {
		l.linkBefore(v, l.getNode(index))
	}
	return nil
}

// 获取指定下标元素
func (l *LinkedList[T]) Get(index int) (T, error) {
	if err := checkElementIndex("linkedList.Get", index, l.size); err != nil {
		var zero T
		return zero, err
	}
	return l.getNode(index).data, nil
}

// 删除指定下标元素并返回
func (l *LinkedList[T]) Remove(index int) (T, error) {
	if err := checkElementIndex("linkedList.Remove", index, l.size); err != nil {
		var zero T
		return zero, err
	}
	return l.deleteNode(l.getNode(index)), nil
}

// RemoveFunc deletes the first element for which match returns true.
// 删除第一个匹配到的数据
func (l *LinkedList[T]) RemoveFunc(match func(v T) bool) bool {
	for n := l.first; n != nil; n = n.next {
		if match(n.data) {
			l.deleteNode(n)
			return true
		}
	}
	return false
}

// 从前向后开始删除，包含指定下标
func (l *LinkedList[T]) RemoveUntil(index int) error {
	if err := checkElementIndex("linkedList.RemoveUntil", index, l.size); err != nil {
		return err
	}
	for i := 0; i <= index; i++ {
		l.deleteNode(l.first)
	}
	return nil
}

// 删除头
func (l *LinkedList[T]) RemoveFirst() (T, bool) {
	if l.first == nil {
		var zero T
		return zero, false
	}
	return l.deleteNode(l.first), true
}

// 删除尾
func (l *LinkedList[T]) RemoveLast() (T, bool) {
	if l.last == nil {
		var zero T
		return zero, false
	}
	return l.deleteNode(l.last), true
}

// 获取第一个元素
func (l *LinkedList[T]) GetFirst() (T, bool) {
	if n := l.first; n != nil {
		return n.data, true
	}
	var zero T
	return zero, false
}

// 获取最后一个元素
func (l *LinkedList[T]) GetLast() (T, bool) {
	if n := l.last; n != nil {
		return n.data, true
	}
	var zero T
	return zero, false
}

// 链表大小
func (l *LinkedList[T]) Size() int {
	return l.size
}

func (l *LinkedList[T]) Empty() bool {
	return l.size == 0
}

// 清空链表
func (l *LinkedList[T]) Clear() {
	var zero T
	for n := l.first; n != nil; {
		next := n.next
		n.data = zero
		n.prev = nil
		n.next = nil
		n = next
	}
	l.first = nil
	l.last = nil
	l.size = 0
}

func (l *LinkedList[T]) Values() []T {
	values := make([]T, 0, l.size)
	for n := l.first; n != nil; n = n.next {
		values = append(values, n.data)
	}
	return values
}

// 遍历链表，返回true继续，返回false停止
func (l *LinkedList[T]) Loop(callback func(index int, v T) bool) {
	index := 0
	for n := l.first; n != nil; n = n.next {
		if !callback(index, n.data) {
			break
		}
		index++
	}
}

// 反向遍历链表，返回true继续，返回false停止
func (l *LinkedList[T]) ReverseLoop(callback func(index int, v T) bool) {
	index := l.size - 1
	for n := l.last; n != nil; n = n.prev {
		if !callback(index, n.data) {
			break
		}
		index--
	}
}

// Sort orders the list ascending by comparator. Each node is compared with
// every later node and payloads are swapped when out of order; the nodes
// themselves never move.
func (l *LinkedList[T]) Sort(comparator utils.Comparator[T]) {
	for cur := l.first; cur != nil; cur = cur.next {
		for later := cur.next; later != nil; later = later.next {
			if comparator(cur.data, later.data) > 0 {
				cur.data, later.data = later.data, cur.data
			}
		}
	}
}

// String renders the elements space separated, e.g. "1 2 3".
func (l *LinkedList[T]) String() string {
	return join(l.Values(), " ")
}

// Iterator returns a cursor positioned before the first element.
func (l *LinkedList[T]) Iterator() *LinkedListIterator[T] {
	return &LinkedListIterator[T]{list: l, index: -1}
}

// linkBefore 在 succ 之前插入新节点，succ 为 nil 时追加到末尾
func (l *LinkedList[T]) linkBefore(v T, succ *node[T]) {
	var pred *node[T]
	if succ == nil {
		pred = l.last
	} else {
		pred = succ.prev
	}
	n := &node[T]{data: v, prev: pred, next: succ}

	if pred == nil {
		l.first = n
	} else {
		pred.next = n
	}
	if succ == nil {
		l.last = n
	} else {
		succ.prev = n
	}
	l.size++
}

// 查找指定位置的元素，调用方保证 0 <= no < size
func (l *LinkedList[T]) getNode(no int) *node[T] {
	var n *node[T]

	// 优化查找顺序，是从前开始找，还是从后开始找
	if no < (l.size / 2) {
		n = l.first
		for from := 0; from < no; from++ {
			n = n.next
		}
	} else {
		n = l.last
		for from := l.size - 1; from > no; from-- {
			n = n.prev
		}
	}
	return n
}

// 删除指定元素，分别处理头、尾、中间三种情况
func (l *LinkedList[T]) deleteNode(n *node[T]) T {
	dat := n.data

	prev := n.prev
	next := n.next

	if prev == nil {
		l.first = next
	} else {
		prev.next = next
	}

	if next == nil {
		l.last = prev
	} else {
		next.prev = prev
	}

	var zero T
	n.data = zero
	n.prev = nil
	n.next = nil

	l.size--
	return dat
}
