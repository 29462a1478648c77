package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the reference constants table.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Canvas: FlappyCanvas{
			Width:    552,
			Height:   480,
			Backdrop: "#30c0df",
		},
		Physics: FlappyPhysics{
			Gravity:               0.125,
			Thrust:                3.6,
			FallGravityMultiplier: 2.0,
			FlapOnStart:           true,
		},
		Pipes: FlappyPipes{
			Gap:             90,
			TopHeight:       400,
			Width:           52,
			OffsetMin:       -350,
			OffsetMax:       -150,
			Speed:           2,
			SpawnIntervalMS: 2000,
		},
		Bird: FlappyBird{
			X:          80,
			StartY:     80,
			ResetY:     100,
			Size:       34,
			Frames:     4,
			FrameEvery: 5,
		},
		Rotation: FlappyRotation{
			MinDeg:     -30,
			MaxDeg:     90,
			RiseFactor: 30,
			FallFactor: 45,
			FallStep:   3,
		},
		Ground: FlappyGround{
			Height:          112,
			ScrollSpeed:     2,
			ScrollInReady:   false,
			ScrollDirection: "left",
		},
		Background: FlappyBackground{
			Height: 228,
		},
		Assets: FlappyAssets{
			BirdFrames: []string{
				"/flappybird/img/bird/b0.png",
				"/flappybird/img/bird/b1.png",
				"/flappybird/img/bird/b2.png",
				"/flappybird/img/bird/b0.png",
			},
			PipeTop:    "/flappybird/img/toppipe.png",
			PipeBottom: "/flappybird/img/botpipe.png",
			Background: "/flappybird/img/BG.png",
			Ground:     "/flappybird/img/ground.png",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultFlappyYAML
}
