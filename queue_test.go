package main

import (
	"sync"
	"testing"
)

func TestTaskQueueOrderAndCapacity(t *testing.T) {
	q := NewTaskQueue(2)
	var ran []int
	if err := q.Insert(func() { ran = append(ran, 1) }); err != nil {
		t.Fatal(err)
	}
	if err := q.Insert(func() { ran = append(ran, 2) }); err != nil {
		t.Fatal(err)
	}
	if err := q.Insert(func() {}); err == nil {
		t.Error("expected full queue error")
	}
	q.RunAll()
	if len(ran) != 2 || ran[0] != 1 || ran[1] != 2 {
		t.Errorf("ran = %v, want [1 2]", ran)
	}
	if _, err := q.Remove(); err == nil {
		t.Error("expected empty queue error")
	}
}

func TestTaskQueueDefersTasksPostedWhileRunning(t *testing.T) {
	q := NewTaskQueue(4)
	var second bool
	q.Insert(func() {
		q.Insert(func() { second = true })
	})
	q.RunAll()
	if second {
		t.Fatal("task posted while running ran in the same pass")
	}
	q.RunAll()
	if !second {
		t.Error("posted task never ran")
	}
}

func TestTaskQueueConcurrentInsert(t *testing.T) {
	q := NewTaskQueue(100)
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.Insert(func() {})
		}()
	}
	wg.Wait()
	n := 0
	for {
		if _, err := q.Remove(); err != nil {
			break
		}
		n++
	}
	if n != 100 {
		t.Errorf("removed %d tasks, want 100", n)
	}
}
