package basic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/v2/containers"
	"github.com/emirpasic/gods/v2/utils"
)

// ErrIndexOutOfRange 下标越界，是本包唯一的错误类型
var ErrIndexOutOfRange = errors.New("index out of range")

// List is the contract shared by ArrayList and LinkedList.
//
// Insert positions accept [0, Size()], where Size() appends.
// Get and Remove accept [0, Size()).
type List[T any] interface {
	containers.Container[T]

	Add(v T)
	AddByIndex(index int, v T) error // 在指定位置插入，之后 Get(index) 返回该元素
	Get(index int) (T, error)
	Remove(index int) (T, error)
	Sort(comparator utils.Comparator[T])
	Loop(callback func(index int, v T) bool) // 遍历，返回true继续，返回false停止
}

var (
	_ List[int] = (*ArrayList[int])(nil)
	_ List[int] = (*LinkedList[int])(nil)
)

// checkElementIndex validates an index that must point at a live element.
func checkElementIndex(op string, index, size int) error {
	if index < 0 || index >= size {
		return outOfRange(op, index, size)
	}
	return nil
}

// checkPositionIndex validates an insert position; size itself is allowed.
func checkPositionIndex(op string, index, size int) error {
	if index < 0 || index > size {
		return outOfRange(op, index, size)
	}
	return nil
}

func outOfRange(op string, index, size int) error {
	return fmt.Errorf("%s: %w: index %d, size %d", op, ErrIndexOutOfRange, index, size)
}

func join[T any](values []T, sep string) string {
	items := make([]string, 0, len(values))
	for _, v := range values {
		items = append(items, fmt.Sprintf("%v", v))
	}
	return strings.Join(items, sep)
}
