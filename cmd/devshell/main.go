package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/nv3d/maxwell3d/engine"
	"github.com/nv3d/maxwell3d/engine/glog"
	"github.com/nv3d/maxwell3d/engine/regs"
	"github.com/nv3d/maxwell3d/engine/state"
)

func main() {
	interactive := flag.Bool("interactive", false, "open a window and bootstrap a real WebGPU device")
	verbose := flag.Bool("v", false, "log at debug level")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	glog.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	e := engine.NewEngine(state.Collaborators{
		Renderer:       &loggingRenderer{},
		TextureManager: loggingTextureManager{},
		BufferManager:  loggingBufferManager{},
		ShaderCache:    newLoggingShaderCache(),
	}, engine.WithProfilingEnabled())

	driveSyntheticFrame(e)

	if *interactive {
		if err := runInteractive(e); err != nil {
			fmt.Fprintln(os.Stderr, "interactive mode failed:", err)
			os.Exit(1)
		}
	}
}

// driveSyntheticFrame pushes a minimal but representative set of register
// writes through the engine — one color target, depth test enabled, one
// enabled shader stage — then issues one draw, exercising the full
// dirty-tracking -> resolve -> commit -> draw path without any guest
// command-stream processor attached.
func driveSyntheticFrame(e engine.Engine) {
	e.Write(regs.OffRTControlCount, 1)
	e.Write(regs.OffRTColorBase+regs.RTColorOffWidth, 1280)
	e.Write(regs.OffRTColorBase+regs.RTColorOffHeight, 720)
	e.Write(regs.OffRTDepthEnabled, 0)
	e.Write(regs.OffRenderTargetScale, math.Float32bits(1.0))

	e.Write(regs.OffDepthTestEnable, 1)
	e.Write(regs.OffDepthTestFunc, 1)

	e.Write(regs.OffShaderStageBase+regs.ShaderOffEnable, 1)
	e.Write(regs.OffShaderStageBase+regs.ShaderOffAddress, 0x1000)

	if err := e.Draw(state.DrawArgs{VertexCount: 3, InstanceCount: 1}); err != nil {
		glog.Logger().Error("draw failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
