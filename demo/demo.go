// Package demo walks both containers through the scenarios the list
// exercises were written against, logging every step.
package demo

import (
	"cmp"
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"owncollections/basic"
	"owncollections/log"
	"owncollections/metrics"
)

type Options struct {
	InitialCapacity int
	// Collector 非空时登记每个演示用到的容器
	Collector *metrics.Collector
}

func (o *Options) track(name string, s metrics.Sized) {
	if o != nil && o.Collector != nil {
		o.Collector.Track(name, s)
	}
}

// RunArrayList adds, inserts, reads, removes, clears and finally bubble
// sorts an ArrayList, returning it in its final state.
func RunArrayList(logger log.Logger, opts *Options) (*basic.ArrayList[int], error) {
	logger = logger.WithField("list", "array")
	config := basic.NewConfig()
	if opts != nil {
		config.InitialCapacity = opts.InitialCapacity
	}
	list := basic.NewArrayListWithConfig[int](config)
	opts.track("array", list)

	list.Add(10)
	list.Add(20)
	list.Add(30)
	logger.Info("size after adding 3 elements: %d [%s]", list.Size(), list)

	if err := list.AddByIndex(1, 25); err != nil {
		return nil, err
	}
	v, err := list.Get(1)
	if err != nil {
		return nil, err
	}
	logger.Info("size after adding %d at index 1: %d [%s]", v, list.Size(), list)

	removed, err := list.Remove(0)
	if err != nil {
		return nil, err
	}
	logger.Info("removed %d at index 0 [%s]", removed, list)

	list.Clear()
	logger.Info("size after clearing: %d", list.Size())

	for _, v := range []int{40, 6, -21, 199} {
		list.Add(v)
	}
	logger.Info("before bubble sort [%s]", list)
	list.Sort(cmp.Compare[int])
	logger.Info("after sort [%s], capacity %d", list, list.Capacity())
	return list, nil
}

// RunLinkedList drives three linked lists: insert and sort, remove by value,
// and remove by index including one rejected index. It returns the lists in
// that order.
func RunLinkedList(logger log.Logger, opts *Options) ([]*basic.LinkedList[int], error) {
	logger = logger.WithField("list", "linked")

	first := newLinkedList(1, 2, 3, 4, 5)
	opts.track("linked-sort", first)
	logger.Info("LinkedList: %s", first)
	if err := first.AddByIndex(2, 23); err != nil {
		return nil, err
	}
	logger.Info("LinkedList: %s", first)
	v, err := first.Get(2)
	if err != nil {
		return nil, err
	}
	logger.Info("element at index 2: %d", v)
	first.Sort(cmp.Compare[int])
	logger.Info("LinkedList: %s", first)

	second := newLinkedList(4, 2, 1, 3, 10)
	opts.track("linked-value", second)
	logger.Info("LinkedList: %s", second)
	if second.RemoveFunc(func(v int) bool { return v == 4 }) {
		logger.Info("value 4 found and removed")
	} else {
		logger.Warn("value 4 not found")
	}
	logger.Info("LinkedList: %s", second)

	third := newLinkedList(1, 2, 3, 4, 5, 6, 7, 8)
	opts.track("linked-index", third)
	logger.Info("LinkedList: %s", third)
	for _, index := range []int{0, 2, 10} {
		removed, err := third.Remove(index)
		switch {
		case errors.Is(err, basic.ErrIndexOutOfRange):
			logger.Warn("remove rejected: %v", err)
		case err != nil:
			return nil, err
		default:
			logger.Info("data %d at index %d removed", removed, index)
		}
		logger.Info("LinkedList: %s", third)
	}
	return []*basic.LinkedList[int]{first, second, third}, nil
}

// DumpMetrics gathers reg and logs every sample.
func DumpMetrics(logger log.Logger, reg prometheus.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			logger.WithField("labels", labels).Info("%s %v", mf.GetName(), m.GetGauge().GetValue())
		}
	}
	return nil
}

func newLinkedList(values ...int) *basic.LinkedList[int] {
	list := basic.NewLinkedList[int]()
	for _, v := range values {
		list.Add(v)
	}
	return list
}
