package chainbench

import (
	"math"

	"go.llib.dev/singly/port/chainlist"
)

// Workload names an operation pattern measured on a freshly made list.
// Every round of a workload handles size elements.
type Workload string

const (
	WorkloadPushHead     Workload = "push_head"
	WorkloadPushBack     Workload = "push_back"
	WorkloadPopHead      Workload = "pop_head"
	WorkloadPopBack      Workload = "pop_back"
	WorkloadInsertMiddle Workload = "insert_middle"
	WorkloadRemoveMiddle Workload = "remove_middle"
)

func Workloads() []Workload {
	return []Workload{
		WorkloadPushHead,
		WorkloadPushBack,
		WorkloadPopHead,
		WorkloadPopBack,
		WorkloadInsertMiddle,
		WorkloadRemoveMiddle,
	}
}

type workloadFunc func(list chainlist.List[uint64], size int) error

var workloads = map[Workload]workloadFunc{
	WorkloadPushHead: func(list chainlist.List[uint64], size int) error {
		fillHead(list, size)
		return nil
	},
	WorkloadPushBack: func(list chainlist.List[uint64], size int) error {
		fillBack(list, size)
		return nil
	},
	WorkloadPopHead: func(list chainlist.List[uint64], size int) error {
		fillHead(list, size)
		for i := 0; i < size; i++ {
			if _, err := list.PopHead(); err != nil {
				return err
			}
		}
		return nil
	},
	WorkloadPopBack: func(list chainlist.List[uint64], size int) error {
		fillBack(list, size)
		for i := 0; i < size; i++ {
			if _, err := list.PopBack(); err != nil {
				return err
			}
		}
		return nil
	},
	WorkloadInsertMiddle: func(list chainlist.List[uint64], size int) error {
		fillBack(list, size)
		return list.Insert(size/2, math.MaxUint64)
	},
	WorkloadRemoveMiddle: func(list chainlist.List[uint64], size int) error {
		fillBack(list, size)
		_, err := list.Remove(size / 2)
		return err
	},
}

// Run executes one round of the workload on list.
func (w Workload) Run(list chainlist.List[uint64], size int) error {
	fn, ok := workloads[w]
	if !ok {
		return ErrUnknownWorkload.F("%q", w)
	}
	return fn(list, size)
}

func (w Workload) valid() bool {
	_, ok := workloads[w]
	return ok
}

func fillHead(list chainlist.List[uint64], size int) {
	for i := 0; i < size; i++ {
		list.PushHead(uint64(i))
	}
}

func fillBack(list chainlist.List[uint64], size int) {
	for i := 0; i < size; i++ {
		list.PushBack(uint64(i))
	}
}
