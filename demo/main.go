package main

import (
	"flag"
	"os"

	"github.com/gorustyt/gonav/agent"
	"github.com/gorustyt/gonav/common"
	"github.com/gorustyt/gonav/demo/config"
	"github.com/gorustyt/gonav/navmesh"
	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	scenePath = flag.String("scene", "", "scene yaml file; empty runs the built-in example")
	logPath   = flag.String("log", "logs/demo.log", "rotated log file")
	dt        = flag.Float64("dt", 1.0/60.0, "fixed tick length in seconds")
	maxFrames = flag.Int("frames", 100000, "tick cap")
)

func newLogger(path string) *zap.Logger {
	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(&lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		}),
		zap.InfoLevel,
	)
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		zap.DebugLevel,
	)
	return zap.New(zapcore.NewTee(consoleCore, fileCore))
}

func main() {
	flag.Parse()
	logger := newLogger(*logPath)
	defer logger.Sync()

	scene := config.DefaultScene()
	if *scenePath != "" {
		loaded, err := config.Load(*scenePath)
		if err != nil {
			logger.Fatal("load scene", zap.Error(err))
		}
		scene = loaded
	}

	mesh, err := scene.BuildMesh()
	if err != nil {
		logger.Fatal("build nav mesh", zap.Error(err))
	}
	registry := navmesh.NewNavMeshRegistry()
	meshID := registry.Register(mesh)
	logger.Info("nav mesh registered",
		zap.Uint32("id", uint32(meshID)),
		zap.Int("vertices", len(mesh.Vertices())),
		zap.Int("triangles", mesh.TriangleCount()))

	agents := make([]*agent.NavAgent, 0, len(scene.Agents))
	for _, cfg := range scene.Agents {
		a := agent.NewNavAgent(common.V3(cfg.Position[0], cfg.Position[1], cfg.Position[2]))
		a.Speed = cfg.Speed
		if cfg.MinTargetDistance > 0 {
			a.MinTargetDistance = cfg.MinTargetDistance
		}
		a.Driver = agent.SimpleNavDriver{}
		dest := common.V3(cfg.Destination[0], cfg.Destination[1], cfg.Destination[2])
		a.SetDestination(agent.PointTarget(dest), cfg.QueryMode(), cfg.PathModeValue(), meshID)
		agents = append(agents, a)
	}

	logEvery := int(1 / *dt)
	if logEvery < 1 {
		logEvery = 1
	}
	frame := 0
	for ; frame < *maxFrames; frame++ {
		for _, err := range agent.MaintainAgents(registry, agents) {
			logger.Warn("path computation failed", zap.Uint64("agent", uint64(err.ID)), zap.Error(err.Err))
		}

		if frame == 0 {
			for _, a := range agents {
				logger.Info("path computed",
					zap.Uint64("agent", uint64(a.ID())),
					zap.Int("points", len(a.Path())),
					zap.Float64("length", a.Path().Length()))
			}
		}

		agent.DriveAgents(*dt, agents)

		if frame%logEvery == 0 {
			for _, a := range agents {
				logger.Debug("agent",
					zap.Uint64("id", uint64(a.ID())),
					zap.Float64("x", a.Position.X()),
					zap.Float64("y", a.Position.Y()))
			}
		}

		idle := true
		for _, a := range agents {
			if a.State() != agent.NavAgentIdle {
				idle = false
				break
			}
		}
		if idle {
			break
		}
	}

	for _, a := range agents {
		logger.Info("agent finished",
			zap.Uint64("id", uint64(a.ID())),
			zap.Int("frames", frame),
			zap.Float64("x", a.Position.X()),
			zap.Float64("y", a.Position.Y()))
	}
}
