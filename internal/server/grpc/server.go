// Package grpc exposes the content API over gRPC. Every unary call passes
// through the same middleware chain as the HTTP transport: panic recovery,
// request logging, token authentication, role authorization.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/inkpresscms/inkpress/internal/logging"
	pb "github.com/inkpresscms/inkpress/internal/proto"
	"github.com/inkpresscms/inkpress/internal/server/services"
)

type GRPCServer struct {
	pb.UnimplementedContentServiceServer
	address     string
	logger      logging.Logger
	content     *services.ContentService
	media       *services.MediaService
	submissions *services.SubmissionService
	jwtSecret   []byte
	issuer      string
}

func NewGRPCServer(a string, l logging.Logger, cs *services.ContentService, ms *services.MediaService, ss *services.SubmissionService, secretKey, issuer string) (*GRPCServer, error) {
	return &GRPCServer{
		address:     a,
		logger:      l.With("module", "grpc_server"),
		content:     cs,
		media:       ms,
		submissions: ss,
		jwtSecret:   []byte(secretKey),
		issuer:      issuer,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server with the full interceptor chain
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.recoveryInterceptor,
		s.loggingInterceptor,
		s.authInterceptor,
		s.roleInterceptor,
	))

	// registers service
	pb.RegisterContentServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
