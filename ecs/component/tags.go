package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

type EnemyTag struct{}

var EnemyTagComponent = NewComponent[EnemyTag]()

// StageExitTag marks the trigger volume that clears the stage.
type StageExitTag struct{}

var StageExitTagComponent = NewComponent[StageExitTag]()
