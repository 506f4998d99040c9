package display

import (
	"bytes"
	"context"
	"net/http"
	"net/rpc"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"exhibit/pkg/paint"
)

type EmptyResponse struct {
}

type ShowRequest struct {
	Title string
	Image []byte
}

// Service exposes a panel over net/rpc.
type Service struct {
	panel *Panel
}

func NewService(panel *Panel) *Service {
	return &Service{panel: panel}
}

func (s *Service) Command(name string, _ *EmptyResponse) error {
	switch name {
	case "startup":
		return s.panel.Startup()
	case "shutdown":
		return s.panel.Shutdown()
	case "restart":
		return s.panel.Restart()
	}

	return errors.Errorf("unknown command %q", name)
}

func (s *Service) SetLight(light uint8, _ *EmptyResponse) error {
	return s.panel.SetLight(light)
}

func (s *Service) Show(req *ShowRequest, _ *EmptyResponse) error {
	c, err := paint.Decode(bytes.NewReader(req.Image), req.Title)
	if err != nil {
		return err
	}
	return s.panel.Show(context.Background(), req.Title, c)
}

// Handler returns an rpc server with svc registered.
func Handler(svc *Service) (*rpc.Server, error) {
	server := rpc.NewServer()
	if err := server.Register(svc); err != nil {
		return nil, err
	}
	return server, nil
}

// Serve runs srv with the panel service for the lifetime of the app.
func Serve(svc *Service, srv *http.Server, logger *zap.Logger, lifecycle fx.Lifecycle) error {
	handler, err := Handler(svc)
	if err != nil {
		return err
	}
	srv.Handler = handler

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != http.ErrServerClosed {
					logger.With(zap.Error(err)).Error("serve failed")
				}
			}()
			logger.With(zap.String("addr", srv.Addr)).Info("panel service listening")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	return nil
}

// Dial connects to a panel served by Serve.
func Dial(addr string) (*Remote, error) {
	client, err := rpc.DialHTTP("tcp", addr)
	if err != nil {
		return nil, err
	}
	return &Remote{rpc: client}, nil
}

type Remote struct {
	rpc *rpc.Client
}

func (r *Remote) Command(name string) error {
	return r.rpc.Call("Service.Command", name, &EmptyResponse{})
}

func (r *Remote) SetLight(light uint8) error {
	return r.rpc.Call("Service.SetLight", light, &EmptyResponse{})
}

func (r *Remote) Show(ctx context.Context, title string, c *paint.Canvas) error {
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		return err
	}

	call := r.rpc.Go("Service.Show", &ShowRequest{Title: title, Image: buf.Bytes()}, &EmptyResponse{}, nil)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-call.Done:
		return call.Error
	}
}

func (r *Remote) Close() error {
	return r.rpc.Close()
}
