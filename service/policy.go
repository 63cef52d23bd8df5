package service

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"studio-backend/entity"
	"studio-backend/errs"
)

// CanManage is the single authorization rule of the system: only the studio
// owner may read or mutate the projects under it.
func CanManage(requester primitive.ObjectID, studio *entity.Studio) bool {
	return studio.Owner == requester
}

func requireOwner(requester primitive.ObjectID, studio *entity.Studio) error {
	if !CanManage(requester, studio) {
		return errs.ErrAccessDenied
	}

	return nil
}
