package main

import (
	"errors"
	"sync"
)

// Task is work posted to run on the next Update
type Task func()

// TaskQueue hands tasks from any goroutine to the game loop
type TaskQueue struct {
	mu       sync.Mutex
	capacity int
	q        []Task
}

// Insert inserts the task onto the end of the queue
func (q *TaskQueue) Insert(task Task) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.q) < q.capacity {
		q.q = append(q.q, task)
		return nil
	}
	return errors.New("TaskQueue is full")
}

// Remove removes the oldest task from the queue
func (q *TaskQueue) Remove() (Task, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.q) > 0 {
		task := q.q[0]
		q.q = q.q[1:]
		return task, nil
	}
	return nil, errors.New("TaskQueue is empty")
}

// RunAll runs the tasks queued so far, oldest first. Tasks queued while
// running wait for the next call.
func (q *TaskQueue) RunAll() {
	q.mu.Lock()
	n := len(q.q)
	q.mu.Unlock()
	for i := 0; i < n; i++ {
		task, err := q.Remove()
		if err != nil {
			return
		}
		task()
	}
}

// NewTaskQueue creates an empty queue with desired capacity
func NewTaskQueue(capacity int) *TaskQueue {
	return &TaskQueue{
		capacity: capacity,
		q:        make([]Task, 0, capacity),
	}
}
