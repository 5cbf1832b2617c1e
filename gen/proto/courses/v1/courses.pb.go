// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: courses/v1/courses.proto

package coursesv1

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

type IngestFileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestFileRequest) Reset() {
	*x = IngestFileRequest{}
	mi := &file_courses_v1_courses_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestFileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestFileRequest) ProtoMessage() {}

func (x *IngestFileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_courses_v1_courses_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestFileRequest.ProtoReflect.Descriptor instead.
func (*IngestFileRequest) Descriptor() ([]byte, []int) {
	return file_courses_v1_courses_proto_rawDescGZIP(), []int{0}
}

func (x *IngestFileRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type IngestResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	FileId          string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	Deduplicated    bool                   `protobuf:"varint,2,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	ContentHashHex  string                 `protobuf:"bytes,3,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	FileExt         string                 `protobuf:"bytes,4,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	UploadedAt      string                 `protobuf:"bytes,5,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"` // RFC3339
	SourcePath      string                 `protobuf:"bytes,6,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	JobId           string                 `protobuf:"bytes,7,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	CourseId        string                 `protobuf:"bytes,8,opt,name=course_id,json=courseId,proto3" json:"course_id,omitempty"`
	RejectionReason string                 `protobuf:"bytes,9,opt,name=rejection_reason,json=rejectionReason,proto3" json:"rejection_reason,omitempty"`
	Error           string                 `protobuf:"bytes,10,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *IngestResponse) Reset() {
	*x = IngestResponse{}
	mi := &file_courses_v1_courses_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestResponse) ProtoMessage() {}

func (x *IngestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_courses_v1_courses_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestResponse.ProtoReflect.Descriptor instead.
func (*IngestResponse) Descriptor() ([]byte, []int) {
	return file_courses_v1_courses_proto_rawDescGZIP(), []int{1}
}

func (x *IngestResponse) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *IngestResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *IngestResponse) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

func (x *IngestResponse) GetFileExt() string {
	if x != nil {
		return x.FileExt
	}
	return ""
}

func (x *IngestResponse) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *IngestResponse) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *IngestResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *IngestResponse) GetCourseId() string {
	if x != nil {
		return x.CourseId
	}
	return ""
}

func (x *IngestResponse) GetRejectionReason() string {
	if x != nil {
		return x.RejectionReason
	}
	return ""
}

func (x *IngestResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type IngestDirectoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RootPath      string                 `protobuf:"bytes,1,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"`
	SkipHidden    bool                   `protobuf:"varint,2,opt,name=skip_hidden,json=skipHidden,proto3" json:"skip_hidden,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryRequest) Reset() {
	*x = IngestDirectoryRequest{}
	mi := &file_courses_v1_courses_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryRequest) ProtoMessage() {}

func (x *IngestDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_courses_v1_courses_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryRequest.ProtoReflect.Descriptor instead.
func (*IngestDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_courses_v1_courses_proto_rawDescGZIP(), []int{2}
}

func (x *IngestDirectoryRequest) GetRootPath() string {
	if x != nil {
		return x.RootPath
	}
	return ""
}

func (x *IngestDirectoryRequest) GetSkipHidden() bool {
	if x != nil {
		return x.SkipHidden
	}
	return false
}

type IngestDirectoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scanned       uint32                 `protobuf:"varint,1,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Matched       uint32                 `protobuf:"varint,2,opt,name=matched,proto3" json:"matched,omitempty"`
	Succeeded     uint32                 `protobuf:"varint,3,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Deduplicated  uint32                 `protobuf:"varint,4,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	Failed        uint32                 `protobuf:"varint,5,opt,name=failed,proto3" json:"failed,omitempty"`
	Results       []*IngestResponse      `protobuf:"bytes,6,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryResponse) Reset() {
	*x = IngestDirectoryResponse{}
	mi := &file_courses_v1_courses_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryResponse) ProtoMessage() {}

func (x *IngestDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_courses_v1_courses_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryResponse.ProtoReflect.Descriptor instead.
func (*IngestDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_courses_v1_courses_proto_rawDescGZIP(), []int{3}
}

func (x *IngestDirectoryResponse) GetScanned() uint32 {
	if x != nil {
		return x.Scanned
	}
	return 0
}

func (x *IngestDirectoryResponse) GetMatched() uint32 {
	if x != nil {
		return x.Matched
	}
	return 0
}

func (x *IngestDirectoryResponse) GetSucceeded() uint32 {
	if x != nil {
		return x.Succeeded
	}
	return 0
}

func (x *IngestDirectoryResponse) GetDeduplicated() uint32 {
	if x != nil {
		return x.Deduplicated
	}
	return 0
}

func (x *IngestDirectoryResponse) GetFailed() uint32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *IngestDirectoryResponse) GetResults() []*IngestResponse {
	if x != nil {
		return x.Results
	}
	return nil
}

type ParseTextRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Text  string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	// When true the parsed course is also stored.
	Persist       bool `protobuf:"varint,2,opt,name=persist,proto3" json:"persist,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseTextRequest) Reset() {
	*x = ParseTextRequest{}
	mi := &file_courses_v1_courses_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseTextRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseTextRequest) ProtoMessage() {}

func (x *ParseTextRequest) ProtoReflect() protoreflect.Message {
	mi := &file_courses_v1_courses_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseTextRequest.ProtoReflect.Descriptor instead.
func (*ParseTextRequest) Descriptor() ([]byte, []int) {
	return file_courses_v1_courses_proto_rawDescGZIP(), []int{4}
}

func (x *ParseTextRequest) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *ParseTextRequest) GetPersist() bool {
	if x != nil {
		return x.Persist
	}
	return false
}

type ParseTextResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Course          *Course                `protobuf:"bytes,1,opt,name=course,proto3" json:"course,omitempty"`
	CourseId        string                 `protobuf:"bytes,2,opt,name=course_id,json=courseId,proto3" json:"course_id,omitempty"` // set only when persisted
	RejectionReason string                 `protobuf:"bytes,3,opt,name=rejection_reason,json=rejectionReason,proto3" json:"rejection_reason,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ParseTextResponse) Reset() {
	*x = ParseTextResponse{}
	mi := &file_courses_v1_courses_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseTextResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseTextResponse) ProtoMessage() {}

func (x *ParseTextResponse) ProtoReflect() protoreflect.Message {
	mi := &file_courses_v1_courses_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseTextResponse.ProtoReflect.Descriptor instead.
func (*ParseTextResponse) Descriptor() ([]byte, []int) {
	return file_courses_v1_courses_proto_rawDescGZIP(), []int{5}
}

func (x *ParseTextResponse) GetCourse() *Course {
	if x != nil {
		return x.Course
	}
	return nil
}

func (x *ParseTextResponse) GetCourseId() string {
	if x != nil {
		return x.CourseId
	}
	return ""
}

func (x *ParseTextResponse) GetRejectionReason() string {
	if x != nil {
		return x.RejectionReason
	}
	return ""
}

type GetCourseRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CourseId      string                 `protobuf:"bytes,1,opt,name=course_id,json=courseId,proto3" json:"course_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCourseRequest) Reset() {
	*x = GetCourseRequest{}
	mi := &file_courses_v1_courses_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCourseRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCourseRequest) ProtoMessage() {}

func (x *GetCourseRequest) ProtoReflect() protoreflect.Message {
	mi := &file_courses_v1_courses_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCourseRequest.ProtoReflect.Descriptor instead.
func (*GetCourseRequest) Descriptor() ([]byte, []int) {
	return file_courses_v1_courses_proto_rawDescGZIP(), []int{6}
}

func (x *GetCourseRequest) GetCourseId() string {
	if x != nil {
		return x.CourseId
	}
	return ""
}

type GetCourseResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Course        *Course                `protobuf:"bytes,1,opt,name=course,proto3" json:"course,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCourseResponse) Reset() {
	*x = GetCourseResponse{}
	mi := &file_courses_v1_courses_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCourseResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCourseResponse) ProtoMessage() {}

func (x *GetCourseResponse) ProtoReflect() protoreflect.Message {
	mi := &file_courses_v1_courses_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCourseResponse.ProtoReflect.Descriptor instead.
func (*GetCourseResponse) Descriptor() ([]byte, []int) {
	return file_courses_v1_courses_proto_rawDescGZIP(), []int{7}
}

func (x *GetCourseResponse) GetCourse() *Course {
	if x != nil {
		return x.Course
	}
	return nil
}

type ListCoursesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Limit         int32                  `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset        int32                  `protobuf:"varint,2,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCoursesRequest) Reset() {
	*x = ListCoursesRequest{}
	mi := &file_courses_v1_courses_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCoursesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCoursesRequest) ProtoMessage() {}

func (x *ListCoursesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_courses_v1_courses_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCoursesRequest.ProtoReflect.Descriptor instead.
func (*ListCoursesRequest) Descriptor() ([]byte, []int) {
	return file_courses_v1_courses_proto_rawDescGZIP(), []int{8}
}

func (x *ListCoursesRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListCoursesRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListCoursesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Courses       []*CourseSummary       `protobuf:"bytes,1,rep,name=courses,proto3" json:"courses,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCoursesResponse) Reset() {
	*x = ListCoursesResponse{}
	mi := &file_courses_v1_courses_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCoursesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCoursesResponse) ProtoMessage() {}

func (x *ListCoursesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_courses_v1_courses_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCoursesResponse.ProtoReflect.Descriptor instead.
func (*ListCoursesResponse) Descriptor() ([]byte, []int) {
	return file_courses_v1_courses_proto_rawDescGZIP(), []int{9}
}

func (x *ListCoursesResponse) GetCourses() []*CourseSummary {
	if x != nil {
		return x.Courses
	}
	return nil
}

type DeleteCourseRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CourseId      string                 `protobuf:"bytes,1,opt,name=course_id,json=courseId,proto3" json:"course_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteCourseRequest) Reset() {
	*x = DeleteCourseRequest{}
	mi := &file_courses_v1_courses_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteCourseRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteCourseRequest) ProtoMessage() {}

func (x *DeleteCourseRequest) ProtoReflect() protoreflect.Message {
	mi := &file_courses_v1_courses_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteCourseRequest.ProtoReflect.Descriptor instead.
func (*DeleteCourseRequest) Descriptor() ([]byte, []int) {
	return file_courses_v1_courses_proto_rawDescGZIP(), []int{10}
}

func (x *DeleteCourseRequest) GetCourseId() string {
	if x != nil {
		return x.CourseId
	}
	return ""
}

type DeleteCourseResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteCourseResponse) Reset() {
	*x = DeleteCourseResponse{}
	mi := &file_courses_v1_courses_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteCourseResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteCourseResponse) ProtoMessage() {}

func (x *DeleteCourseResponse) ProtoReflect() protoreflect.Message {
	mi := &file_courses_v1_courses_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteCourseResponse.ProtoReflect.Descriptor instead.
func (*DeleteCourseResponse) Descriptor() ([]byte, []int) {
	return file_courses_v1_courses_proto_rawDescGZIP(), []int{11}
}

type ExportCoursesRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Absolute path for the workbook; a default under the working directory
	// is used when empty.
	OutputPath    string `protobuf:"bytes,1,opt,name=output_path,json=outputPath,proto3" json:"output_path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportCoursesRequest) Reset() {
	*x = ExportCoursesRequest{}
	mi := &file_courses_v1_courses_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportCoursesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportCoursesRequest) ProtoMessage() {}

func (x *ExportCoursesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_courses_v1_courses_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportCoursesRequest.ProtoReflect.Descriptor instead.
func (*ExportCoursesRequest) Descriptor() ([]byte, []int) {
	return file_courses_v1_courses_proto_rawDescGZIP(), []int{12}
}

func (x *ExportCoursesRequest) GetOutputPath() string {
	if x != nil {
		return x.OutputPath
	}
	return ""
}

type ExportCoursesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OutputPath    string                 `protobuf:"bytes,1,opt,name=output_path,json=outputPath,proto3" json:"output_path,omitempty"`
	CourseCount   uint32                 `protobuf:"varint,2,opt,name=course_count,json=courseCount,proto3" json:"course_count,omitempty"`
	LessonCount   uint32                 `protobuf:"varint,3,opt,name=lesson_count,json=lessonCount,proto3" json:"lesson_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportCoursesResponse) Reset() {
	*x = ExportCoursesResponse{}
	mi := &file_courses_v1_courses_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportCoursesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportCoursesResponse) ProtoMessage() {}

func (x *ExportCoursesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_courses_v1_courses_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportCoursesResponse.ProtoReflect.Descriptor instead.
func (*ExportCoursesResponse) Descriptor() ([]byte, []int) {
	return file_courses_v1_courses_proto_rawDescGZIP(), []int{13}
}

func (x *ExportCoursesResponse) GetOutputPath() string {
	if x != nil {
		return x.OutputPath
	}
	return ""
}

func (x *ExportCoursesResponse) GetCourseCount() uint32 {
	if x != nil {
		return x.CourseCount
	}
	return 0
}

func (x *ExportCoursesResponse) GetLessonCount() uint32 {
	if x != nil {
		return x.LessonCount
	}
	return 0
}

type Course struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Title          string                 `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	Description    string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	EstimatedHours float64                `protobuf:"fixed64,4,opt,name=estimated_hours,json=estimatedHours,proto3" json:"estimated_hours,omitempty"`
	Difficulty     string                 `protobuf:"bytes,5,opt,name=difficulty,proto3" json:"difficulty,omitempty"`
	Lessons        []*Lesson              `protobuf:"bytes,6,rep,name=lessons,proto3" json:"lessons,omitempty"`
	CreatedAt      string                 `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC3339
	UpdatedAt      string                 `protobuf:"bytes,8,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"` // RFC3339
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Course) Reset() {
	*x = Course{}
	mi := &file_courses_v1_courses_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Course) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Course) ProtoMessage() {}

func (x *Course) ProtoReflect() protoreflect.Message {
	mi := &file_courses_v1_courses_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Course.ProtoReflect.Descriptor instead.
func (*Course) Descriptor() ([]byte, []int) {
	return file_courses_v1_courses_proto_rawDescGZIP(), []int{14}
}

func (x *Course) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Course) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Course) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Course) GetEstimatedHours() float64 {
	if x != nil {
		return x.EstimatedHours
	}
	return 0
}

func (x *Course) GetDifficulty() string {
	if x != nil {
		return x.Difficulty
	}
	return ""
}

func (x *Course) GetLessons() []*Lesson {
	if x != nil {
		return x.Lessons
	}
	return nil
}

func (x *Course) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Course) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Lesson struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	LessonNumber  int32                  `protobuf:"varint,1,opt,name=lesson_number,json=lessonNumber,proto3" json:"lesson_number,omitempty"`
	Title         string                 `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	Topics        []string               `protobuf:"bytes,3,rep,name=topics,proto3" json:"topics,omitempty"`
	Duration      string                 `protobuf:"bytes,4,opt,name=duration,proto3" json:"duration,omitempty"`
	Content       string                 `protobuf:"bytes,5,opt,name=content,proto3" json:"content,omitempty"`
	SkillTags     []string               `protobuf:"bytes,6,rep,name=skill_tags,json=skillTags,proto3" json:"skill_tags,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Lesson) Reset() {
	*x = Lesson{}
	mi := &file_courses_v1_courses_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Lesson) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Lesson) ProtoMessage() {}

func (x *Lesson) ProtoReflect() protoreflect.Message {
	mi := &file_courses_v1_courses_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Lesson.ProtoReflect.Descriptor instead.
func (*Lesson) Descriptor() ([]byte, []int) {
	return file_courses_v1_courses_proto_rawDescGZIP(), []int{15}
}

func (x *Lesson) GetLessonNumber() int32 {
	if x != nil {
		return x.LessonNumber
	}
	return 0
}

func (x *Lesson) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Lesson) GetTopics() []string {
	if x != nil {
		return x.Topics
	}
	return nil
}

func (x *Lesson) GetDuration() string {
	if x != nil {
		return x.Duration
	}
	return ""
}

func (x *Lesson) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *Lesson) GetSkillTags() []string {
	if x != nil {
		return x.SkillTags
	}
	return nil
}

type CourseSummary struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Title          string                 `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	Description    string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	EstimatedHours float64                `protobuf:"fixed64,4,opt,name=estimated_hours,json=estimatedHours,proto3" json:"estimated_hours,omitempty"`
	Difficulty     string                 `protobuf:"bytes,5,opt,name=difficulty,proto3" json:"difficulty,omitempty"`
	LessonCount    int32                  `protobuf:"varint,6,opt,name=lesson_count,json=lessonCount,proto3" json:"lesson_count,omitempty"`
	CreatedAt      string                 `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *CourseSummary) Reset() {
	*x = CourseSummary{}
	mi := &file_courses_v1_courses_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CourseSummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CourseSummary) ProtoMessage() {}

func (x *CourseSummary) ProtoReflect() protoreflect.Message {
	mi := &file_courses_v1_courses_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CourseSummary.ProtoReflect.Descriptor instead.
func (*CourseSummary) Descriptor() ([]byte, []int) {
	return file_courses_v1_courses_proto_rawDescGZIP(), []int{16}
}

func (x *CourseSummary) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *CourseSummary) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *CourseSummary) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *CourseSummary) GetEstimatedHours() float64 {
	if x != nil {
		return x.EstimatedHours
	}
	return 0
}

func (x *CourseSummary) GetDifficulty() string {
	if x != nil {
		return x.Difficulty
	}
	return ""
}

func (x *CourseSummary) GetLessonCount() int32 {
	if x != nil {
		return x.LessonCount
	}
	return 0
}

func (x *CourseSummary) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

var File_courses_v1_courses_proto protoreflect.FileDescriptor

const file_courses_v1_courses_proto_rawDesc = "" +
	"\n" +
	"\x18courses/v1/courses.proto\x12\n" +
	"courses.v1\"'\n" +
	"\x11IngestFileRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\"\xc9\x02\n" +
	"\x0eIngestResponse\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\x12\"\n" +
	"\fdeduplicated\x18\x02 \x01(\bR\fdeduplicated\x12(\n" +
	"\x10content_hash_hex\x18\x03 \x01(\tR\x0econtentHashHex\x12\x19\n" +
	"\bfile_ext\x18\x04 \x01(\tR\afileExt\x12\x1f\n" +
	"\vuploaded_at\x18\x05 \x01(\tR\n" +
	"uploadedAt\x12\x1f\n" +
	"\vsource_path\x18\x06 \x01(\tR\n" +
	"sourcePath\x12\x15\n" +
	"\x06job_id\x18\a \x01(\tR\x05jobId\x12\x1b\n" +
	"\tcourse_id\x18\b \x01(\tR\bcourseId\x12)\n" +
	"\x10rejection_reason\x18\t \x01(\tR\x0frejectionReason\x12\x14\n" +
	"\x05error\x18\n" +
	" \x01(\tR\x05error\"V\n" +
	"\x16IngestDirectoryRequest\x12\x1b\n" +
	"\troot_path\x18\x01 \x01(\tR\brootPath\x12\x1f\n" +
	"\vskip_hidden\x18\x02 \x01(\bR\n" +
	"skipHidden\"\xdd\x01\n" +
	"\x17IngestDirectoryResponse\x12\x18\n" +
	"\ascanned\x18\x01 \x01(\rR\ascanned\x12\x18\n" +
	"\amatched\x18\x02 \x01(\rR\amatched\x12\x1c\n" +
	"\tsucceeded\x18\x03 \x01(\rR\tsucceeded\x12\"\n" +
	"\fdeduplicated\x18\x04 \x01(\rR\fdeduplicated\x12\x16\n" +
	"\x06failed\x18\x05 \x01(\rR\x06failed\x124\n" +
	"\aresults\x18\x06 \x03(\v2\x1a.courses.v1.IngestResponseR\aresults\"@\n" +
	"\x10ParseTextRequest\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text\x12\x18\n" +
	"\apersist\x18\x02 \x01(\bR\apersist\"\x87\x01\n" +
	"\x11ParseTextResponse\x12*\n" +
	"\x06course\x18\x01 \x01(\v2\x12.courses.v1.CourseR\x06course\x12\x1b\n" +
	"\tcourse_id\x18\x02 \x01(\tR\bcourseId\x12)\n" +
	"\x10rejection_reason\x18\x03 \x01(\tR\x0frejectionReason\"/\n" +
	"\x10GetCourseRequest\x12\x1b\n" +
	"\tcourse_id\x18\x01 \x01(\tR\bcourseId\"?\n" +
	"\x11GetCourseResponse\x12*\n" +
	"\x06course\x18\x01 \x01(\v2\x12.courses.v1.CourseR\x06course\"B\n" +
	"\x12ListCoursesRequest\x12\x14\n" +
	"\x05limit\x18\x01 \x01(\x05R\x05limit\x12\x16\n" +
	"\x06offset\x18\x02 \x01(\x05R\x06offset\"J\n" +
	"\x13ListCoursesResponse\x123\n" +
	"\acourses\x18\x01 \x03(\v2\x19.courses.v1.CourseSummaryR\acourses\"2\n" +
	"\x13DeleteCourseRequest\x12\x1b\n" +
	"\tcourse_id\x18\x01 \x01(\tR\bcourseId\"\x16\n" +
	"\x14DeleteCourseResponse\"7\n" +
	"\x14ExportCoursesRequest\x12\x1f\n" +
	"\voutput_path\x18\x01 \x01(\tR\n" +
	"outputPath\"~\n" +
	"\x15ExportCoursesResponse\x12\x1f\n" +
	"\voutput_path\x18\x01 \x01(\tR\n" +
	"outputPath\x12!\n" +
	"\fcourse_count\x18\x02 \x01(\rR\vcourseCount\x12!\n" +
	"\flesson_count\x18\x03 \x01(\rR\vlessonCount\"\x85\x02\n" +
	"\x06Course\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12'\n" +
	"\x0festimated_hours\x18\x04 \x01(\x01R\x0eestimatedHours\x12\x1e\n" +
	"\n" +
	"difficulty\x18\x05 \x01(\tR\n" +
	"difficulty\x12,\n" +
	"\alessons\x18\x06 \x03(\v2\x12.courses.v1.LessonR\alessons\x12\x1d\n" +
	"\n" +
	"created_at\x18\a \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\b \x01(\tR\tupdatedAt\"\xb0\x01\n" +
	"\x06Lesson\x12#\n" +
	"\rlesson_number\x18\x01 \x01(\x05R\flessonNumber\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x12\x16\n" +
	"\x06topics\x18\x03 \x03(\tR\x06topics\x12\x1a\n" +
	"\bduration\x18\x04 \x01(\tR\bduration\x12\x18\n" +
	"\acontent\x18\x05 \x01(\tR\acontent\x12\x1d\n" +
	"\n" +
	"skill_tags\x18\x06 \x03(\tR\tskillTags\"\xe2\x01\n" +
	"\rCourseSummary\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12'\n" +
	"\x0festimated_hours\x18\x04 \x01(\x01R\x0eestimatedHours\x12\x1e\n" +
	"\n" +
	"difficulty\x18\x05 \x01(\tR\n" +
	"difficulty\x12!\n" +
	"\flesson_count\x18\x06 \x01(\x05R\vlessonCount\x12\x1d\n" +
	"\n" +
	"created_at\x18\a \x01(\tR\tcreatedAt2\xb7\x01\n" +
	"\x10IngestionService\x12G\n" +
	"\n" +
	"IngestFile\x12\x1d.courses.v1.IngestFileRequest\x1a\x1a.courses.v1.IngestResponse\x12Z\n" +
	"\x0fIngestDirectory\x12\".courses.v1.IngestDirectoryRequest\x1a#.courses.v1.IngestDirectoryResponse2\x9d\x03\n" +
	"\x0eCoursesService\x12H\n" +
	"\tParseText\x12\x1c.courses.v1.ParseTextRequest\x1a\x1d.courses.v1.ParseTextResponse\x12H\n" +
	"\tGetCourse\x12\x1c.courses.v1.GetCourseRequest\x1a\x1d.courses.v1.GetCourseResponse\x12N\n" +
	"\vListCourses\x12\x1e.courses.v1.ListCoursesRequest\x1a\x1f.courses.v1.ListCoursesResponse\x12Q\n" +
	"\fDeleteCourse\x12\x1f.courses.v1.DeleteCourseRequest\x1a .courses.v1.DeleteCourseResponse\x12T\n" +
	"\rExportCourses\x12 .courses.v1.ExportCoursesRequest\x1a!.courses.v1.ExportCoursesResponseBDZBgithub.com/coursekit/roadmap-parser/gen/proto/courses/v1;coursesv1b\x06proto3"

var (
	file_courses_v1_courses_proto_rawDescOnce sync.Once
	file_courses_v1_courses_proto_rawDescData []byte
)

func file_courses_v1_courses_proto_rawDescGZIP() []byte {
	file_courses_v1_courses_proto_rawDescOnce.Do(func() {
		file_courses_v1_courses_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_courses_v1_courses_proto_rawDesc), len(file_courses_v1_courses_proto_rawDesc)))
	})
	return file_courses_v1_courses_proto_rawDescData
}

var file_courses_v1_courses_proto_msgTypes = make([]protoimpl.MessageInfo, 17)
var file_courses_v1_courses_proto_goTypes = []any{
	(*IngestFileRequest)(nil),       // 0: courses.v1.IngestFileRequest
	(*IngestResponse)(nil),          // 1: courses.v1.IngestResponse
	(*IngestDirectoryRequest)(nil),  // 2: courses.v1.IngestDirectoryRequest
	(*IngestDirectoryResponse)(nil), // 3: courses.v1.IngestDirectoryResponse
	(*ParseTextRequest)(nil),        // 4: courses.v1.ParseTextRequest
	(*ParseTextResponse)(nil),       // 5: courses.v1.ParseTextResponse
	(*GetCourseRequest)(nil),        // 6: courses.v1.GetCourseRequest
	(*GetCourseResponse)(nil),       // 7: courses.v1.GetCourseResponse
	(*ListCoursesRequest)(nil),      // 8: courses.v1.ListCoursesRequest
	(*ListCoursesResponse)(nil),     // 9: courses.v1.ListCoursesResponse
	(*DeleteCourseRequest)(nil),     // 10: courses.v1.DeleteCourseRequest
	(*DeleteCourseResponse)(nil),    // 11: courses.v1.DeleteCourseResponse
	(*ExportCoursesRequest)(nil),    // 12: courses.v1.ExportCoursesRequest
	(*ExportCoursesResponse)(nil),   // 13: courses.v1.ExportCoursesResponse
	(*Course)(nil),                  // 14: courses.v1.Course
	(*Lesson)(nil),                  // 15: courses.v1.Lesson
	(*CourseSummary)(nil),           // 16: courses.v1.CourseSummary
}
var file_courses_v1_courses_proto_depIdxs = []int32{
	1,  // 0: courses.v1.IngestDirectoryResponse.results:type_name -> courses.v1.IngestResponse
	14, // 1: courses.v1.ParseTextResponse.course:type_name -> courses.v1.Course
	14, // 2: courses.v1.GetCourseResponse.course:type_name -> courses.v1.Course
	16, // 3: courses.v1.ListCoursesResponse.courses:type_name -> courses.v1.CourseSummary
	15, // 4: courses.v1.Course.lessons:type_name -> courses.v1.Lesson
	0,  // 5: courses.v1.IngestionService.IngestFile:input_type -> courses.v1.IngestFileRequest
	2,  // 6: courses.v1.IngestionService.IngestDirectory:input_type -> courses.v1.IngestDirectoryRequest
	4,  // 7: courses.v1.CoursesService.ParseText:input_type -> courses.v1.ParseTextRequest
	6,  // 8: courses.v1.CoursesService.GetCourse:input_type -> courses.v1.GetCourseRequest
	8,  // 9: courses.v1.CoursesService.ListCourses:input_type -> courses.v1.ListCoursesRequest
	10, // 10: courses.v1.CoursesService.DeleteCourse:input_type -> courses.v1.DeleteCourseRequest
	12, // 11: courses.v1.CoursesService.ExportCourses:input_type -> courses.v1.ExportCoursesRequest
	1,  // 12: courses.v1.IngestionService.IngestFile:output_type -> courses.v1.IngestResponse
	3,  // 13: courses.v1.IngestionService.IngestDirectory:output_type -> courses.v1.IngestDirectoryResponse
	5,  // 14: courses.v1.CoursesService.ParseText:output_type -> courses.v1.ParseTextResponse
	7,  // 15: courses.v1.CoursesService.GetCourse:output_type -> courses.v1.GetCourseResponse
	9,  // 16: courses.v1.CoursesService.ListCourses:output_type -> courses.v1.ListCoursesResponse
	11, // 17: courses.v1.CoursesService.DeleteCourse:output_type -> courses.v1.DeleteCourseResponse
	13, // 18: courses.v1.CoursesService.ExportCourses:output_type -> courses.v1.ExportCoursesResponse
	12, // [12:19] is the sub-list for method output_type
	5,  // [5:12] is the sub-list for method input_type
	5,  // [5:5] is the sub-list for extension type_name
	5,  // [5:5] is the sub-list for extension extendee
	0,  // [0:5] is the sub-list for field type_name
}

func init() { file_courses_v1_courses_proto_init() }
func file_courses_v1_courses_proto_init() {
	if File_courses_v1_courses_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_courses_v1_courses_proto_rawDesc), len(file_courses_v1_courses_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   17,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_courses_v1_courses_proto_goTypes,
		DependencyIndexes: file_courses_v1_courses_proto_depIdxs,
		MessageInfos:      file_courses_v1_courses_proto_msgTypes,
	}.Build()
	File_courses_v1_courses_proto = out.File
	file_courses_v1_courses_proto_goTypes = nil
	file_courses_v1_courses_proto_depIdxs = nil
}
