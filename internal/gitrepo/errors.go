package gitrepo

import "errors"

var (
	ErrRepositoryNotFound = errors.New("repository not found")
	ErrDuplicateRemote    = errors.New("remote already linked to this project")
	ErrInvalidProvider    = errors.New("invalid provider")
	ErrProjectNotFound    = errors.New("project not found")
)
