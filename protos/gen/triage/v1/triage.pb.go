// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: triage/v1/triage.proto

package triagev1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type GetAssessmentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AssessmentId  string                 `protobuf:"bytes,1,opt,name=assessment_id,json=assessmentId,proto3" json:"assessment_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAssessmentRequest) Reset() {
	*x = GetAssessmentRequest{}
	mi := &file_triage_v1_triage_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAssessmentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAssessmentRequest) ProtoMessage() {}

func (x *GetAssessmentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_triage_v1_triage_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAssessmentRequest.ProtoReflect.Descriptor instead.
func (*GetAssessmentRequest) Descriptor() ([]byte, []int) {
	return file_triage_v1_triage_proto_rawDescGZIP(), []int{0}
}

func (x *GetAssessmentRequest) GetAssessmentId() string {
	if x != nil {
		return x.AssessmentId
	}
	return ""
}

type GetAssessmentResponse struct {
	state        protoimpl.MessageState `protogen:"open.v1"`
	AssessmentId string                 `protobuf:"bytes,1,opt,name=assessment_id,json=assessmentId,proto3" json:"assessment_id,omitempty"`
	// Urgency level assigned by the triage engine, e.g. "urgent", "routine".
	Level         string `protobuf:"bytes,2,opt,name=level,proto3" json:"level,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAssessmentResponse) Reset() {
	*x = GetAssessmentResponse{}
	mi := &file_triage_v1_triage_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAssessmentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAssessmentResponse) ProtoMessage() {}

func (x *GetAssessmentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_triage_v1_triage_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAssessmentResponse.ProtoReflect.Descriptor instead.
func (*GetAssessmentResponse) Descriptor() ([]byte, []int) {
	return file_triage_v1_triage_proto_rawDescGZIP(), []int{1}
}

func (x *GetAssessmentResponse) GetAssessmentId() string {
	if x != nil {
		return x.AssessmentId
	}
	return ""
}

func (x *GetAssessmentResponse) GetLevel() string {
	if x != nil {
		return x.Level
	}
	return ""
}

var File_triage_v1_triage_proto protoreflect.FileDescriptor

const file_triage_v1_triage_proto_rawDesc = "" +
	"\n" +
	"\x16triage/v1/triage.proto\x12\ttriage.v1\";\n" +
	"\x14GetAssessmentRequest\x12#\n" +
	"\rassessment_id\x18\x01 \x01(\tR\fassessmentId\"R\n" +
	"\x15GetAssessmentResponse\x12#\n" +
	"\rassessment_id\x18\x01 \x01(\tR\fassessmentId\x12\x14\n" +
	"\x05level\x18\x02 \x01(\tR\x05level2c\n" +
	"\rTriageService\x12R\n" +
	"\rGetAssessment\x12\x1f.triage.v1.GetAssessmentRequest\x1a .triage.v1.GetAssessmentResponseB@Z>github.com/petcare-labs/pawsched/protos/gen/triage/v1;triagev1b\x06proto3"

var (
	file_triage_v1_triage_proto_rawDescOnce sync.Once
	file_triage_v1_triage_proto_rawDescData []byte
)

func file_triage_v1_triage_proto_rawDescGZIP() []byte {
	file_triage_v1_triage_proto_rawDescOnce.Do(func() {
		file_triage_v1_triage_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_triage_v1_triage_proto_rawDesc), len(file_triage_v1_triage_proto_rawDesc)))
	})
	return file_triage_v1_triage_proto_rawDescData
}

var file_triage_v1_triage_proto_msgTypes = make([]protoimpl.MessageInfo, 2)
var file_triage_v1_triage_proto_goTypes = []any{
	(*GetAssessmentRequest)(nil),  // 0: triage.v1.GetAssessmentRequest
	(*GetAssessmentResponse)(nil), // 1: triage.v1.GetAssessmentResponse
}
var file_triage_v1_triage_proto_depIdxs = []int32{
	0, // 0: triage.v1.TriageService.GetAssessment:input_type -> triage.v1.GetAssessmentRequest
	1, // 1: triage.v1.TriageService.GetAssessment:output_type -> triage.v1.GetAssessmentResponse
	1, // [1:2] is the sub-list for method output_type
	0, // [0:1] is the sub-list for method input_type
	0, // [0:0] is the sub-list for extension type_name
	0, // [0:0] is the sub-list for extension extendee
	0, // [0:0] is the sub-list for field type_name
}

func init() { file_triage_v1_triage_proto_init() }
func file_triage_v1_triage_proto_init() {
	if File_triage_v1_triage_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_triage_v1_triage_proto_rawDesc), len(file_triage_v1_triage_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   2,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_triage_v1_triage_proto_goTypes,
		DependencyIndexes: file_triage_v1_triage_proto_depIdxs,
		MessageInfos:      file_triage_v1_triage_proto_msgTypes,
	}.Build()
	File_triage_v1_triage_proto = out.File
	file_triage_v1_triage_proto_goTypes = nil
	file_triage_v1_triage_proto_depIdxs = nil
}
