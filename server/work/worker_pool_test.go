package work

import (
	"testing"

	"safetravelbuddy/server/models"

	"github.com/stretchr/testify/assert"
)

func TestEnqueue(t *testing.T) {
	models.InitializeTestDb()

	workerPool := newWorkerPool(MAX_CONCURRENCY)

	err := workerPool.enqueue(JobParams{
		Name:    "suits",
		Handler: "donna",
		Args: map[string]interface{}{
			"first_name": "mike",
			"last_name":  "ross",
		},
	})
	assert.Nil(t, err)

	// Make sure the correct job is created & waiting in the queue
	job, err := models.LastEnqueuedJob()
	assert.Nil(t, err)
	assert.Equal(t, "suits", job.Name, "The job name should match the expected job name")
	assert.Contains(t, job.Args, "mike", "Should contain the correct arg values")
}

func TestEnqueueRequiresNameAndHandler(t *testing.T) {
	models.InitializeTestDb()

	workerPool := newWorkerPool(MAX_CONCURRENCY)

	assert.NotNil(t, workerPool.enqueue(JobParams{Name: "", Handler: "donna"}))
	assert.NotNil(t, workerPool.enqueue(JobParams{Name: "suits", Handler: " "}))
}

func TestEnqueueUniqueJobRejectsDuplicates(t *testing.T) {
	models.InitializeTestDb()

	workerPool := newWorkerPool(MAX_CONCURRENCY)

	job := JobParams{Name: "backup", Handler: "backup", Unique: true}

	assert.Nil(t, workerPool.enqueue(job))
	assert.ErrorIs(t, workerPool.enqueue(job), models.ErrDuplicateJob)
}
