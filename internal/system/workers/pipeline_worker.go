/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package workers

import (
	"fmt"
	"sync"

	pipelinemodel "github.com/wso2/xml-ingestion-service/internal/pipeline/model"
	"github.com/wso2/xml-ingestion-service/internal/system/log"
)

// The ingestion queue decouples upload acceptance from processing. Handlers
// enqueue and return immediately; a fixed pool of workers drains the queue
// and drives each submission through the processor.

// Processor consumes one submission end to end, including finalizing its
// registry entry.
type Processor func(submission pipelinemodel.Submission)

type pool struct {
	queue     chan pipelinemodel.Submission
	processor Processor
	wg        sync.WaitGroup
}

var (
	activePool *pool
	poolMutex  sync.Mutex
)

// StartPipelineWorkers provisions the queue and starts the worker pool.
// Calling it twice without a stop in between is a programming error.
func StartPipelineWorkers(queueSize int, workerCount int, processor Processor) {

	poolMutex.Lock()
	defer poolMutex.Unlock()
	if activePool != nil {
		panic("pipeline workers already started")
	}
	if workerCount <= 0 {
		workerCount = 1
	}

	p := &pool{
		queue:     make(chan pipelinemodel.Submission, queueSize),
		processor: processor,
	}
	for i := 0; i < workerCount; i++ {
		p.wg.Add(1)
		go p.run(i)
	}
	activePool = p
	log.GetLogger().Info(fmt.Sprintf("Started %d pipeline worker(s) with queue capacity %d.",
		workerCount, queueSize))
}

// StopPipelineWorkers closes the queue and waits for in-flight submissions
// to finish.
func StopPipelineWorkers() {

	poolMutex.Lock()
	p := activePool
	activePool = nil
	poolMutex.Unlock()
	if p == nil {
		return
	}

	close(p.queue)
	p.wg.Wait()
	log.GetLogger().Info("Pipeline workers stopped.")
}

// Enqueue hands a submission to the worker pool. Returns false when the
// queue is full or the pool is not running; the caller decides how to
// surface the backpressure.
func Enqueue(submission pipelinemodel.Submission) bool {

	poolMutex.Lock()
	p := activePool
	poolMutex.Unlock()
	if p == nil {
		return false
	}

	select {
	case p.queue <- submission:
		return true
	default:
		return false
	}
}

func (p *pool) run(workerId int) {

	defer p.wg.Done()
	logger := log.GetLogger()
	for submission := range p.queue {
		logger.Debug(fmt.Sprintf("Worker %d picked up file: %s.", workerId, submission.FileId))
		p.processor(submission)
	}
}
