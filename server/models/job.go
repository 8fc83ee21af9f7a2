package models

import (
	"errors"

	"gorm.io/gorm"
)

var ErrDuplicateJob = errors.New("job with the given name already exists in queue")

type Job struct {
	BaseModel
	Fails       int        `json:"fails"`
	Name        string     `json:"name"`
	Handler     string     `json:"handler"`
	Args        string     `json:"args"`
	LastError   string     `json:"last_error"`
	Claimed     bool       `json:"claimed" gorm:"default:false"`
	JobStatusID uint       `json:"job_status_id"`
	JobStatus   *JobStatus `json:"status"`
}

// MarkAsClaimed claims the job for a worker, so no other worker
// picks it up. It reports whether the claim actually went through.
func (job *Job) MarkAsClaimed() (bool, error) {
	inProgressStatus, err := FindJobStatus(IN_PROGRESS_JOB)
	if err != nil {
		return false, err
	}

	res := db.Model(&Job{}).Where("id = ? AND claimed = ?", job.ID, false).Updates(map[string]interface{}{
		"claimed":       true,
		"job_status_id": inProgressStatus.ID,
	})

	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}

func (job *Job) Update(data map[string]interface{}) error {
	return db.Model(job).Updates(data).Error
}

// CreateJob enqueues a new job to be picked up by a worker.
func CreateJob(name string, handler string, args string) error {
	enqueuedStatus, err := FindJobStatus(ENQUEUED_JOB)
	if err != nil {
		return err
	}

	return db.Create(&Job{
		Name:        name,
		Handler:     handler,
		Args:        args,
		JobStatusID: enqueuedStatus.ID,
	}).Error
}

// CreateUniqueJobByName enqueues a new job, unless a job with the same
// name is already enqueued or in-progress.
func CreateUniqueJobByName(name string, handler string, args string) error {
	queuedJobStatuses := []JobStatus{}
	err := db.Where("name IN ('enqueued', 'in-progress')").Find(&queuedJobStatuses).Error
	if err != nil {
		return err
	}

	statusIDs := []uint{}
	for _, status := range queuedJobStatuses {
		statusIDs = append(statusIDs, status.ID)
	}

	results := db.Where("name = ? AND job_status_id IN ?", name, statusIDs).First(&Job{})
	if results.Error != nil && !errors.Is(results.Error, gorm.ErrRecordNotFound) {
		return results.Error
	}

	if results.RowsAffected > 0 {
		return ErrDuplicateJob
	}

	return CreateJob(name, handler, args)
}

// LastEnqueuedJob returns the oldest unclaimed job waiting in the queue.
func LastEnqueuedJob() (*Job, error) {
	job := Job{}

	err := db.Joins(
		"INNER JOIN job_statuses ON job_statuses.id = jobs.job_status_id AND job_statuses.name = ?", ENQUEUED_JOB).
		Where("claimed = ?", false).
		Order("jobs.id asc").
		First(&job).Error
	if err != nil {
		return nil, err
	}

	return &job, nil
}
