package game

import "fmt"

// Scene selects which diagram the left half of the window shows. All
// scenes share the same clock, so switching never loses the angle.
type Scene int

const (
	SceneCircle Scene = iota
	SceneSpring
	SceneCircular
	ScenePendulum

	sceneCount
)

func (s Scene) String() string {
	switch s {
	case SceneCircle:
		return "unit circle"
	case SceneSpring:
		return "spring-mass"
	case SceneCircular:
		return "circular motion"
	case ScenePendulum:
		return "pendulum"
	}
	return "unknown"
}

// Next cycles to the following scene, wrapping around.
func (s Scene) Next() Scene {
	return (s + 1) % sceneCount
}

// ParseScene maps a CLI/env name to a scene.
func ParseScene(name string) (Scene, error) {
	switch name {
	case "circle", "unit-circle":
		return SceneCircle, nil
	case "spring", "spring-mass":
		return SceneSpring, nil
	case "circular", "circular-motion":
		return SceneCircular, nil
	case "pendulum":
		return ScenePendulum, nil
	}
	return SceneCircle, fmt.Errorf("unknown scene %q (want circle, spring, circular or pendulum)", name)
}
