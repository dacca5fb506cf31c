package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TweenData drives the Y position of a floating platform.
type TweenData struct {
	Sequence *gween.Sequence
}

var Tween = donburi.NewComponentType[TweenData]()
