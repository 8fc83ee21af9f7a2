package work

import (
	"bytes"
	"testing"
	"time"

	"safetravelbuddy/server/models"

	"github.com/stretchr/testify/assert"
)

func TestPerform(t *testing.T) {
	models.InitializeTestDb()

	workerPool := NewWorkerAdapter("UTC")
	outputBuffer := new(bytes.Buffer)

	// Register job function
	writeToBuffer := func(m map[string]interface{}) error {
		_, err := outputBuffer.WriteString("Hello")
		return err
	}
	workerPool.Register("write_to_buffer", writeToBuffer)

	err := workerPool.Perform(JobParams{
		Name:    "write_to_buffer",
		Handler: "write_to_buffer",
		Args:    map[string]interface{}{},
	})
	assert.Nil(t, err)
	assert.Empty(t, outputBuffer.String(), "Expected outputBuffer to be empty before workers start")

	workerPool.Start()

	// Wait for job to be processed
	time.Sleep(2 * time.Second)

	workerPool.Stop()

	assert.Equal(t, "Hello", outputBuffer.String(), "Expected job to write to outputBuffer")
}

func TestPerformToleratesDuplicateUniqueJob(t *testing.T) {
	models.InitializeTestDb()

	workerPool := NewWorkerAdapter("UTC")

	job := JobParams{
		Name:    "close_stale",
		Handler: "close_stale",
		Unique:  true,
		Args:    map[string]interface{}{},
	}

	assert.Nil(t, workerPool.Perform(job))

	// Enqueuing the same unique job again is a no-op, not an error
	assert.Nil(t, workerPool.Perform(job))
}
