package moviev1

import (
	"context"
	"errors"
	"io"
	"net"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/dynamicpb"
)

func TestFileDescriptor_RegisteredWithService(t *testing.T) {
	desc, err := protoregistry.GlobalFiles.FindDescriptorByName(ServiceName)
	if err != nil {
		t.Fatalf("find %s: %v", ServiceName, err)
	}
	service, ok := desc.(protoreflect.ServiceDescriptor)
	if !ok {
		t.Fatalf("descriptor type = %T, want service", desc)
	}
	methods := service.Methods()
	if methods.Len() != 2 {
		t.Fatalf("methods = %d, want 2", methods.Len())
	}
	getMovies := methods.ByName("GetMovies")
	if getMovies == nil || !getMovies.IsStreamingServer() || getMovies.IsStreamingClient() {
		t.Fatalf("GetMovies must be server streaming: %v", getMovies)
	}
	getMovie := methods.ByName("GetMovie")
	if getMovie == nil || getMovie.IsStreamingServer() {
		t.Fatalf("GetMovie must be unary: %v", getMovie)
	}
	if got := getMovie.Output().FullName(); got != "movie.v1.Movie" {
		t.Fatalf("GetMovie output = %s, want movie.v1.Movie", got)
	}
}

func TestMovie_WireFieldNumbers(t *testing.T) {
	encoded, err := proto.Marshal((&Movie{Id: "m-1", Name: "Vertigo (1958)"}).ToProto())
	if err != nil {
		t.Fatalf("marshal movie: %v", err)
	}
	// field 1 (id) then field 2 (name), both length-delimited.
	want := append([]byte{0x0a, 3}, "m-1"...)
	want = append(want, 0x12, 14)
	want = append(want, "Vertigo (1958)"...)
	if string(encoded) != string(want) {
		t.Fatalf("encoded = %x, want %x", encoded, want)
	}

	decoded := dynamicpb.NewMessage(movieDescriptor)
	if err := proto.Unmarshal(encoded, decoded); err != nil {
		t.Fatalf("unmarshal movie: %v", err)
	}
	got := movieFromProto(decoded)
	if got.GetId() != "m-1" || got.GetName() != "Vertigo (1958)" {
		t.Fatalf("decoded = %+v", got)
	}
}

func TestGetters_NilSafe(t *testing.T) {
	var movie *Movie
	var search *MoviesQuery
	var lookup *MovieQuery
	if movie.GetId() != "" || movie.GetName() != "" || search.GetQuery() != "" || lookup.GetId() != "" {
		t.Fatal("expected empty values from nil receivers")
	}
}

type fakeMovieServer struct {
	UnimplementedMovieServiceServer
	movies []*Movie
}

func (s *fakeMovieServer) GetMovies(in *MoviesQuery, stream MovieService_GetMoviesServer) error {
	if in.GetQuery() == "" {
		return status.Error(codes.InvalidArgument, "query is required")
	}
	for _, movie := range s.movies {
		if err := stream.Send(movie); err != nil {
			return err
		}
	}
	return nil
}

func newBufconnClient(t *testing.T, srv MovieServiceServer) MovieServiceClient {
	t.Helper()

	listener := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	RegisterMovieServiceServer(server, srv)
	go func() {
		_ = server.Serve(listener)
	}()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial bufconn: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return NewMovieServiceClient(conn)
}

func TestMovieService_StreamAndUnimplemented(t *testing.T) {
	client := newBufconnClient(t, &fakeMovieServer{movies: []*Movie{
		{Id: "a", Name: "Alien (1979)"},
		{Id: "b", Name: "Aliens (1986)"},
	}})
	ctx := context.Background()

	stream, err := client.GetMovies(ctx, &MoviesQuery{Query: "alien"})
	if err != nil {
		t.Fatalf("get movies: %v", err)
	}
	var names []string
	for {
		movie, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("recv: %v", err)
		}
		names = append(names, movie.GetName())
	}
	if len(names) != 2 || names[0] != "Alien (1979)" || names[1] != "Aliens (1986)" {
		t.Fatalf("names = %v", names)
	}

	stream, err = client.GetMovies(ctx, &MoviesQuery{})
	if err != nil {
		t.Fatalf("get movies: %v", err)
	}
	if _, err := stream.Recv(); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.InvalidArgument)
	}

	_, err = client.GetMovie(ctx, &MovieQuery{Id: "a"})
	if status.Code(err) != codes.Unimplemented {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.Unimplemented)
	}
}
