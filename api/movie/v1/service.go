package moviev1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/dynamicpb"
)

// Full method names for movie.v1.MovieService.
const (
	MovieService_GetMovies_FullMethodName = "/movie.v1.MovieService/GetMovies"
	MovieService_GetMovie_FullMethodName  = "/movie.v1.MovieService/GetMovie"
)

// MovieServiceClient is the client API for movie.v1.MovieService.
type MovieServiceClient interface {
	GetMovies(ctx context.Context, in *MoviesQuery, opts ...grpc.CallOption) (MovieService_GetMoviesClient, error)
	GetMovie(ctx context.Context, in *MovieQuery, opts ...grpc.CallOption) (*Movie, error)
}

type movieServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewMovieServiceClient creates a movie service client on the given connection.
func NewMovieServiceClient(cc grpc.ClientConnInterface) MovieServiceClient {
	return &movieServiceClient{cc: cc}
}

func (c *movieServiceClient) GetMovies(ctx context.Context, in *MoviesQuery, opts ...grpc.CallOption) (MovieService_GetMoviesClient, error) {
	stream, err := c.cc.NewStream(ctx, &MovieService_ServiceDesc.Streams[0], MovieService_GetMovies_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &movieServiceGetMoviesClient{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in.ToProto()); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// MovieService_GetMoviesClient receives search results from the server.
type MovieService_GetMoviesClient interface {
	Recv() (*Movie, error)
	grpc.ClientStream
}

type movieServiceGetMoviesClient struct {
	grpc.ClientStream
}

func (x *movieServiceGetMoviesClient) Recv() (*Movie, error) {
	msg := dynamicpb.NewMessage(movieDescriptor)
	if err := x.ClientStream.RecvMsg(msg); err != nil {
		return nil, err
	}
	return movieFromProto(msg), nil
}

func (c *movieServiceClient) GetMovie(ctx context.Context, in *MovieQuery, opts ...grpc.CallOption) (*Movie, error) {
	out := dynamicpb.NewMessage(movieDescriptor)
	if err := c.cc.Invoke(ctx, MovieService_GetMovie_FullMethodName, in.ToProto(), out, opts...); err != nil {
		return nil, err
	}
	return movieFromProto(out), nil
}

// MovieServiceServer is the server API for movie.v1.MovieService.
//
// Implementations must embed UnimplementedMovieServiceServer.
type MovieServiceServer interface {
	GetMovies(*MoviesQuery, MovieService_GetMoviesServer) error
	GetMovie(context.Context, *MovieQuery) (*Movie, error)
	mustEmbedUnimplementedMovieServiceServer()
}

// UnimplementedMovieServiceServer answers every method with codes.Unimplemented.
type UnimplementedMovieServiceServer struct{}

func (UnimplementedMovieServiceServer) GetMovies(*MoviesQuery, MovieService_GetMoviesServer) error {
	return status.Error(codes.Unimplemented, "method GetMovies not implemented")
}

func (UnimplementedMovieServiceServer) GetMovie(context.Context, *MovieQuery) (*Movie, error) {
	return nil, status.Error(codes.Unimplemented, "method GetMovie not implemented")
}

func (UnimplementedMovieServiceServer) mustEmbedUnimplementedMovieServiceServer() {}

// RegisterMovieServiceServer registers srv on the given registrar.
func RegisterMovieServiceServer(s grpc.ServiceRegistrar, srv MovieServiceServer) {
	s.RegisterService(&MovieService_ServiceDesc, srv)
}

// MovieService_GetMoviesServer sends search results to the client.
type MovieService_GetMoviesServer interface {
	Send(*Movie) error
	grpc.ServerStream
}

type movieServiceGetMoviesServer struct {
	grpc.ServerStream
}

func (x *movieServiceGetMoviesServer) Send(m *Movie) error {
	return x.ServerStream.SendMsg(m.ToProto())
}

func getMoviesHandler(srv any, stream grpc.ServerStream) error {
	in := dynamicpb.NewMessage(moviesQueryDescriptor)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(MovieServiceServer).GetMovies(moviesQueryFromProto(in), &movieServiceGetMoviesServer{ServerStream: stream})
}

// getMovieHandler hands interceptors the typed request; the typed reply is
// converted back to a proto message for the codec.
func getMovieHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := dynamicpb.NewMessage(movieQueryDescriptor)
	if err := dec(in); err != nil {
		return nil, err
	}
	handler := func(ctx context.Context, req any) (any, error) {
		out, err := srv.(MovieServiceServer).GetMovie(ctx, req.(*MovieQuery))
		if err != nil {
			return nil, err
		}
		return out.ToProto(), nil
	}
	req := movieQueryFromProto(in)
	if interceptor == nil {
		return handler(ctx, req)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MovieService_GetMovie_FullMethodName,
	}
	return interceptor(ctx, req, info, handler)
}

// MovieService_ServiceDesc is the grpc.ServiceDesc for movie.v1.MovieService.
var MovieService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*MovieServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetMovie",
			Handler:    getMovieHandler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "GetMovies",
			Handler:       getMoviesHandler,
			ServerStreams: true,
		},
	},
	Metadata: FileName,
}
