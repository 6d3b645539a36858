package anywork

import (
	"sync"
)

type WorkGroup interface {
	add()
	done()
	Wait()
}

type workgroup struct {
	sync.WaitGroup
}

func NewGroup() WorkGroup {
	return &workgroup{}
}

func (it *workgroup) add() {
	it.Add(1)
}

func (it *workgroup) done() {
	it.Done()
}
