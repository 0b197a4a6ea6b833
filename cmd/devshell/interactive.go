package main

import (
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/nv3d/maxwell3d/engine"
	"github.com/nv3d/maxwell3d/engine/glog"
	"github.com/nv3d/maxwell3d/engine/window"
)

// interactiveSession bootstraps a real WebGPU instance/adapter/device
// against a real window's surface, grounded on the teacher's
// newWGPURendererBackend and ConfigureSurface. It exists to prove the
// dependency is wired to a genuine device rather than only to vocabulary
// types; it does not build a render pipeline, since that object-creation
// step beyond invoking the factory is out of scope here (the translator
// under demonstration uses logging stand-ins for the host collaborators
// regardless of interactive mode).
type interactiveSession struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	surface  *wgpu.Surface

	surfaceFormat wgpu.TextureFormat
}

func runInteractive(e engine.Engine) error {
	win := window.NewWindow(
		window.WithTitle("maxwell3d devshell"),
		window.WithWidth(1280),
		window.WithHeight(720),
	)
	defer win.Close()

	sess, err := newInteractiveSession(win)
	if err != nil {
		return err
	}
	defer sess.release()

	win.SetResizeCallback(func(width, height int) {
		glog.Logger().Info("window resized", slog.Int("width", width), slog.Int("height", height))
		sess.configureSurface(width, height)
		if err := e.UpdateRenderTargetState(false, false, true); err != nil {
			glog.Logger().Error("render target re-resolution failed", slog.String("error", err.Error()))
		}
	})

	win.SetUpdateCallback(func() {
		driveSyntheticFrame(e)
	})

	win.ProcessMessages()
	return nil
}

func newInteractiveSession(win window.Window) (*interactiveSession, error) {
	instance := wgpu.CreateInstance(nil)
	surface := instance.CreateSurface(win.SurfaceDescriptor())

	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: surface,
	})
	if err != nil {
		return nil, err
	}

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{Label: "devshell device"})
	if err != nil {
		return nil, err
	}

	sess := &interactiveSession{
		instance: instance,
		adapter:  adapter,
		device:   device,
		surface:  surface,
	}
	sess.configureSurface(win.Width(), win.Height())
	return sess, nil
}

func (s *interactiveSession) configureSurface(width, height int) {
	capabilities := s.surface.GetCapabilities(s.adapter)
	s.surfaceFormat = capabilities.Formats[0]

	s.surface.Configure(s.adapter, s.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      s.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   capabilities.AlphaModes[0],
	})
}

func (s *interactiveSession) release() {
	s.surface.Unconfigure()
	s.device.Release()
	s.adapter.Release()
	s.instance.Release()
}
