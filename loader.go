package main

import (
	"log"
	"math/rand"
	"time"
)

// startLoadingData pretends to load data: after a random 1 to 3 seconds done
// is posted to q for the game loop to run.
func startLoadingData(q *TaskQueue, done Task) {
	delay := time.Duration(1000+rand.Intn(2000)) * time.Millisecond
	if DebugMode {
		log.Println("loading data for", delay)
	}
	time.AfterFunc(delay, func() {
		if err := q.Insert(done); err != nil {
			log.Println(err)
		}
	})
}
