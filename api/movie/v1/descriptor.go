// Package moviev1 carries the movie.v1 wire contract.
//
// The file descriptor mirrors api/proto/movie/v1/movie.proto. It is assembled
// at init, registered in the global proto registry so server reflection can
// describe it, and messages travel as dynamicpb values behind the typed
// wrappers in this package.
package moviev1

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
)

const (
	// FileName is the registry path of the movie.v1 proto file.
	FileName = "movie/v1/movie.proto"
	// ServiceName is the fully-qualified gRPC service name.
	ServiceName = "movie.v1.MovieService"

	protoPackage = "movie.v1"
	goPackage    = "github.com/louisbranch/cosmos/api/movie/v1;moviev1"
)

var (
	// File describes movie/v1/movie.proto.
	File protoreflect.FileDescriptor

	movieDescriptor       protoreflect.MessageDescriptor
	moviesQueryDescriptor protoreflect.MessageDescriptor
	movieQueryDescriptor  protoreflect.MessageDescriptor
)

func init() {
	fd, err := protodesc.NewFile(fileDescriptorProto(), protoregistry.GlobalFiles)
	if err != nil {
		panic(fmt.Sprintf("build %s: %v", FileName, err))
	}
	if err := protoregistry.GlobalFiles.RegisterFile(fd); err != nil {
		panic(fmt.Sprintf("register %s: %v", FileName, err))
	}
	File = fd

	messages := fd.Messages()
	movieDescriptor = messages.ByName("Movie")
	moviesQueryDescriptor = messages.ByName("MoviesQuery")
	movieQueryDescriptor = messages.ByName("MovieQuery")
}

func fileDescriptorProto() *descriptorpb.FileDescriptorProto {
	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String(FileName),
		Package: proto.String(protoPackage),
		Syntax:  proto.String("proto3"),
		Options: &descriptorpb.FileOptions{
			GoPackage: proto.String(goPackage),
		},
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name: proto.String("Movie"),
				Field: []*descriptorpb.FieldDescriptorProto{
					stringField("id", 1),
					stringField("name", 2),
				},
			},
			{
				Name:  proto.String("MoviesQuery"),
				Field: []*descriptorpb.FieldDescriptorProto{stringField("query", 1)},
			},
			{
				Name:  proto.String("MovieQuery"),
				Field: []*descriptorpb.FieldDescriptorProto{stringField("id", 1)},
			},
		},
		Service: []*descriptorpb.ServiceDescriptorProto{
			{
				Name: proto.String("MovieService"),
				Method: []*descriptorpb.MethodDescriptorProto{
					{
						Name:            proto.String("GetMovies"),
						InputType:       proto.String("." + protoPackage + ".MoviesQuery"),
						OutputType:      proto.String("." + protoPackage + ".Movie"),
						ServerStreaming: proto.Bool(true),
					},
					{
						Name:       proto.String("GetMovie"),
						InputType:  proto.String("." + protoPackage + ".MovieQuery"),
						OutputType: proto.String("." + protoPackage + ".Movie"),
					},
				},
			},
		},
	}
}

func stringField(name string, number int32) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:     proto.String(name),
		JsonName: proto.String(name),
		Number:   proto.Int32(number),
		Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:     descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum(),
	}
}
