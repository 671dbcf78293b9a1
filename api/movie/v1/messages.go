package moviev1

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
)

// Movie is one catalog entry.
type Movie struct {
	Id   string
	Name string
}

// GetId returns the movie identifier.
func (x *Movie) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

// GetName returns the movie display name.
func (x *Movie) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

// MoviesQuery requests every movie whose name contains Query.
type MoviesQuery struct {
	Query string
}

// GetQuery returns the search text.
func (x *MoviesQuery) GetQuery() string {
	if x != nil {
		return x.Query
	}
	return ""
}

// MovieQuery requests one movie by identifier.
type MovieQuery struct {
	Id string
}

// GetId returns the requested identifier.
func (x *MovieQuery) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

// ToProto returns the movie as a protobuf message.
func (x *Movie) ToProto() proto.Message {
	msg := dynamicpb.NewMessage(movieDescriptor)
	setString(msg, "id", x.GetId())
	setString(msg, "name", x.GetName())
	return msg
}

// ToProto returns the query as a protobuf message.
func (x *MoviesQuery) ToProto() proto.Message {
	msg := dynamicpb.NewMessage(moviesQueryDescriptor)
	setString(msg, "query", x.GetQuery())
	return msg
}

// ToProto returns the query as a protobuf message.
func (x *MovieQuery) ToProto() proto.Message {
	msg := dynamicpb.NewMessage(movieQueryDescriptor)
	setString(msg, "id", x.GetId())
	return msg
}

func movieFromProto(msg protoreflect.ProtoMessage) *Movie {
	return &Movie{
		Id:   getString(msg, "id"),
		Name: getString(msg, "name"),
	}
}

func moviesQueryFromProto(msg protoreflect.ProtoMessage) *MoviesQuery {
	return &MoviesQuery{Query: getString(msg, "query")}
}

func movieQueryFromProto(msg protoreflect.ProtoMessage) *MovieQuery {
	return &MovieQuery{Id: getString(msg, "id")}
}

func setString(msg *dynamicpb.Message, name protoreflect.Name, value string) {
	if value == "" {
		return
	}
	msg.Set(msg.Descriptor().Fields().ByName(name), protoreflect.ValueOfString(value))
}

func getString(msg protoreflect.ProtoMessage, name protoreflect.Name) string {
	m := msg.ProtoReflect()
	field := m.Descriptor().Fields().ByName(name)
	if field == nil {
		return ""
	}
	return m.Get(field).String()
}
