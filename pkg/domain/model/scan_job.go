package model

import (
	"time"

	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// ScanJob tracks one scanner job from creation to export.
type ScanJob struct {
	ID             types.ScanJobID      `json:"id"`
	RemoteID       string               `json:"remote_id"`
	Name           string               `json:"name"`
	OrganizationID types.OrganizationID `json:"organization_id,omitempty"`
	Targets        []Target             `json:"targets"`
	State          types.ScanState      `json:"state"`
	LastStatus     types.RemoteStatus   `json:"last_status,omitempty"`
	Error          string               `json:"error,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	StartedAt      time.Time            `json:"started_at,omitzero"`
	CompletedAt    time.Time            `json:"completed_at,omitzero"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

func NewScanJob(name string, orgID types.OrganizationID, targets []Target, now time.Time) *ScanJob {
	return &ScanJob{
		ID:             types.NewScanJobID(),
		Name:           name,
		OrganizationID: orgID,
		Targets:        targets,
		State:          types.ScanStateIdle,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// allowed transitions; a job may fail from any non-terminal state
var scanTransitions = map[types.ScanState][]types.ScanState{
	types.ScanStateIdle:     {types.ScanStateCreated, types.ScanStateFailed},
	types.ScanStateCreated:  {types.ScanStateLaunched, types.ScanStateFailed},
	types.ScanStateLaunched: {types.ScanStatePolling, types.ScanStateFailed},
	types.ScanStatePolling:  {types.ScanStateCompleted, types.ScanStateFailed},
}

// Transition moves the job to the next state. Skipping a state or leaving a terminal state fails with ErrInvalidState.
func (x *ScanJob) Transition(to types.ScanState, now time.Time) error {
	for _, next := range scanTransitions[x.State] {
		if next != to {
			continue
		}

		x.State = to
		x.UpdatedAt = now
		switch to {
		case types.ScanStateLaunched:
			x.StartedAt = now
		case types.ScanStateCompleted, types.ScanStateFailed:
			x.CompletedAt = now
		}
		return nil
	}

	return goerr.Wrap(types.ErrInvalidState, "transition is not allowed",
		goerr.V("job_id", x.ID),
		goerr.V("from", x.State),
		goerr.V("to", to),
	)
}

// Fail marks the job as failed and records the cause. It is a no-op for terminal jobs.
func (x *ScanJob) Fail(cause error, now time.Time) {
	if x.State.Terminal() {
		return
	}
	if cause != nil {
		x.Error = cause.Error()
	}
	_ = x.Transition(types.ScanStateFailed, now)
}

// Copy returns a deep copy of the job
func (x *ScanJob) Copy() *ScanJob {
	if x == nil {
		return nil
	}
	cpy := *x
	if x.Targets != nil {
		cpy.Targets = make([]Target, len(x.Targets))
		for i, t := range x.Targets {
			cpy.Targets[i] = t
			if t.DeviceMetadata != nil {
				md := make(map[string]string, len(t.DeviceMetadata))
				for k, v := range t.DeviceMetadata {
					md[k] = v
				}
				cpy.Targets[i].DeviceMetadata = md
			}
		}
	}
	return &cpy
}

func (x *ScanJob) TargetIPs() []string {
	ips := make([]string, 0, len(x.Targets))
	for _, t := range x.Targets {
		ips = append(ips, t.IP)
	}
	return ips
}
