package stage

import "errors"

var (
	ErrNoSession     = errors.New("stage: no game session")
	ErrPlayerLoad    = errors.New("stage: could not load player scene")
	ErrEnemyLoad     = errors.New("stage: could not load enemy scene")
	ErrEnemySpawn    = errors.New("stage: could not create enemy instance")
	ErrTemplateInUse = errors.New("stage: enemy template already in use")
	ErrMissingPort   = errors.New("stage: missing collaborator")
)
