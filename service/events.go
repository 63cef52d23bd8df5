package service

import "studio-backend/entity"

// ProjectEvents receives notifications after successful project mutations.
// The amqp implementation lives in the events package; tests use a recorder.
type ProjectEvents interface {
	ProjectCreated(p *entity.Project)
	ProjectUpdated(p *entity.Project)
	ProjectAssigned(p *entity.Project)
	ProjectDeleted(p *entity.Project)
}

type NopEvents struct{}

func (NopEvents) ProjectCreated(*entity.Project)  {}
func (NopEvents) ProjectUpdated(*entity.Project)  {}
func (NopEvents) ProjectAssigned(*entity.Project) {}
func (NopEvents) ProjectDeleted(*entity.Project)  {}
