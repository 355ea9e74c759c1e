package basic

import (
	"cmp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayListGrowth(t *testing.T) {
	l := NewArrayList[int]()
	assert.Equal(t, 10, l.Capacity())

	for i := 0; i < 10; i++ {
		l.Add(i)
	}
	assert.Equal(t, 10, l.Capacity())

	l.Add(10)
	assert.Equal(t, 20, l.Capacity())
	assert.Equal(t, 11, l.Size())
	for i := 0; i < 11; i++ {
		v, err := l.Get(i)
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
}

func TestArrayListGrowthOnInsert(t *testing.T) {
	l := NewArrayListWithConfig[string](&Config{InitialCapacity: 2})
	l.Add("b")
	l.Add("c")
	require.NoError(t, l.AddByIndex(0, "a"))
	assert.Equal(t, 4, l.Capacity())
	assert.Equal(t, []string{"a", "b", "c"}, l.Values())
}

func TestArrayListReadsDoNotGrow(t *testing.T) {
	l := NewArrayListWithConfig[int](&Config{InitialCapacity: 1})
	l.Add(1)
	_, _ = l.Get(0)
	_, _ = l.Get(5)
	l.Values()
	assert.Equal(t, 1, l.Capacity())
}

func TestArrayListConfigFallback(t *testing.T) {
	assert.Equal(t, 10, NewArrayListWithConfig[int](&Config{}).Capacity())
	assert.Equal(t, 10, NewArrayListWithConfig[int](nil).Capacity())

	var l ArrayList[int]
	l.Add(1)
	assert.Equal(t, 10, l.Capacity())
}

func TestArrayListRemoveClearsTrailingSlot(t *testing.T) {
	a, b, c := new(int), new(int), new(int)
	l := NewArrayList[*int]()
	l.Add(a)
	l.Add(b)
	l.Add(c)

	v, err := l.Remove(0)
	require.NoError(t, err)
	assert.Same(t, a, v)
	assert.Nil(t, l.data[2])
	assert.Equal(t, []*int{b, c}, l.Values())
}

func TestArrayListClearKeepsCapacity(t *testing.T) {
	l := NewArrayList[int]()
	for i := 0; i < 15; i++ {
		l.Add(i)
	}
	l.Clear()
	assert.Equal(t, 20, l.Capacity())
	for _, v := range l.data {
		assert.Zero(t, v)
	}
}

func TestArrayListErrorMessage(t *testing.T) {
	l := NewArrayList[int]()
	l.Add(1)
	_, err := l.Get(3)
	require.Error(t, err)
	assert.Equal(t, "arrayList.Get: index out of range: index 3, size 1", err.Error())
}

func TestArrayListSortComparator(t *testing.T) {
	l := NewArrayList[string]()
	for _, s := range []string{"pear", "fig", "banana", "kiwi"} {
		l.Add(s)
	}
	l.Sort(func(x, y string) int {
		return cmp.Compare(len(x), len(y))
	})
	// 冒泡排序是稳定的
	assert.Equal(t, []string{"fig", "pear", "kiwi", "banana"}, l.Values())

	l.Sort(strings.Compare)
	assert.Equal(t, []string{"banana", "fig", "kiwi", "pear"}, l.Values())
}

func TestArrayListString(t *testing.T) {
	l := NewArrayList[int]()
	assert.Equal(t, "", l.String())
	l.Add(10)
	l.Add(20)
	l.Add(30)
	assert.Equal(t, "10, 20, 30", l.String())
}

func BenchmarkArrayListAdd(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l := NewArrayList[int]()
		for j := 0; j < 1000; j++ {
			l.Add(j)
		}
	}
}
