// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: tidebooks/v1/tidebooks.proto

package tidebookspb

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

type Company struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	CurrencyCode  string                 `protobuf:"bytes,3,opt,name=currency_code,json=currencyCode,proto3" json:"currency_code,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,4,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,5,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Company) Reset() {
	*x = Company{}
	mi := &file_tidebooks_v1_tidebooks_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Company) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Company) ProtoMessage() {}

func (x *Company) ProtoReflect() protoreflect.Message {
	mi := &file_tidebooks_v1_tidebooks_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Company.ProtoReflect.Descriptor instead.
func (*Company) Descriptor() ([]byte, []int) {
	return file_tidebooks_v1_tidebooks_proto_rawDescGZIP(), []int{0}
}

func (x *Company) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Company) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Company) GetCurrencyCode() string {
	if x != nil {
		return x.CurrencyCode
	}
	return ""
}

func (x *Company) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Company) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type LedgerItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Price         string                 `protobuf:"bytes,2,opt,name=price,proto3" json:"price,omitempty"`
	Category      string                 `protobuf:"bytes,3,opt,name=category,proto3" json:"category,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LedgerItem) Reset() {
	*x = LedgerItem{}
	mi := &file_tidebooks_v1_tidebooks_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LedgerItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LedgerItem) ProtoMessage() {}

func (x *LedgerItem) ProtoReflect() protoreflect.Message {
	mi := &file_tidebooks_v1_tidebooks_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LedgerItem.ProtoReflect.Descriptor instead.
func (*LedgerItem) Descriptor() ([]byte, []int) {
	return file_tidebooks_v1_tidebooks_proto_rawDescGZIP(), []int{1}
}

func (x *LedgerItem) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *LedgerItem) GetPrice() string {
	if x != nil {
		return x.Price
	}
	return ""
}

func (x *LedgerItem) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

type LedgerEntry struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	CompanyId     string                 `protobuf:"bytes,2,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	CompanyName   string                 `protobuf:"bytes,3,opt,name=company_name,json=companyName,proto3" json:"company_name,omitempty"`
	EntryDate     string                 `protobuf:"bytes,4,opt,name=entry_date,json=entryDate,proto3" json:"entry_date,omitempty"`
	StoreName     string                 `protobuf:"bytes,5,opt,name=store_name,json=storeName,proto3" json:"store_name,omitempty"`
	Total         float64                `protobuf:"fixed64,6,opt,name=total,proto3" json:"total,omitempty"`
	Items         []*LedgerItem          `protobuf:"bytes,7,rep,name=items,proto3" json:"items,omitempty"`
	NeedsReview   bool                   `protobuf:"varint,8,opt,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LedgerEntry) Reset() {
	*x = LedgerEntry{}
	mi := &file_tidebooks_v1_tidebooks_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LedgerEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LedgerEntry) ProtoMessage() {}

func (x *LedgerEntry) ProtoReflect() protoreflect.Message {
	mi := &file_tidebooks_v1_tidebooks_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LedgerEntry.ProtoReflect.Descriptor instead.
func (*LedgerEntry) Descriptor() ([]byte, []int) {
	return file_tidebooks_v1_tidebooks_proto_rawDescGZIP(), []int{2}
}

func (x *LedgerEntry) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *LedgerEntry) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

func (x *LedgerEntry) GetCompanyName() string {
	if x != nil {
		return x.CompanyName
	}
	return ""
}

func (x *LedgerEntry) GetEntryDate() string {
	if x != nil {
		return x.EntryDate
	}
	return ""
}

func (x *LedgerEntry) GetStoreName() string {
	if x != nil {
		return x.StoreName
	}
	return ""
}

func (x *LedgerEntry) GetTotal() float64 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *LedgerEntry) GetItems() []*LedgerItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *LedgerEntry) GetNeedsReview() bool {
	if x != nil {
		return x.NeedsReview
	}
	return false
}

func (x *LedgerEntry) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type CreateCompanyRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	CurrencyCode  string                 `protobuf:"bytes,2,opt,name=currency_code,json=currencyCode,proto3" json:"currency_code,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateCompanyRequest) Reset() {
	*x = CreateCompanyRequest{}
	mi := &file_tidebooks_v1_tidebooks_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateCompanyRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateCompanyRequest) ProtoMessage() {}

func (x *CreateCompanyRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tidebooks_v1_tidebooks_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateCompanyRequest.ProtoReflect.Descriptor instead.
func (*CreateCompanyRequest) Descriptor() ([]byte, []int) {
	return file_tidebooks_v1_tidebooks_proto_rawDescGZIP(), []int{3}
}

func (x *CreateCompanyRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateCompanyRequest) GetCurrencyCode() string {
	if x != nil {
		return x.CurrencyCode
	}
	return ""
}

type CreateCompanyResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Company       *Company               `protobuf:"bytes,1,opt,name=company,proto3" json:"company,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateCompanyResponse) Reset() {
	*x = CreateCompanyResponse{}
	mi := &file_tidebooks_v1_tidebooks_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateCompanyResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateCompanyResponse) ProtoMessage() {}

func (x *CreateCompanyResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tidebooks_v1_tidebooks_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateCompanyResponse.ProtoReflect.Descriptor instead.
func (*CreateCompanyResponse) Descriptor() ([]byte, []int) {
	return file_tidebooks_v1_tidebooks_proto_rawDescGZIP(), []int{4}
}

func (x *CreateCompanyResponse) GetCompany() *Company {
	if x != nil {
		return x.Company
	}
	return nil
}

type ListCompaniesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCompaniesRequest) Reset() {
	*x = ListCompaniesRequest{}
	mi := &file_tidebooks_v1_tidebooks_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCompaniesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCompaniesRequest) ProtoMessage() {}

func (x *ListCompaniesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tidebooks_v1_tidebooks_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCompaniesRequest.ProtoReflect.Descriptor instead.
func (*ListCompaniesRequest) Descriptor() ([]byte, []int) {
	return file_tidebooks_v1_tidebooks_proto_rawDescGZIP(), []int{5}
}

type ListCompaniesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Companies     []*Company             `protobuf:"bytes,1,rep,name=companies,proto3" json:"companies,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCompaniesResponse) Reset() {
	*x = ListCompaniesResponse{}
	mi := &file_tidebooks_v1_tidebooks_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCompaniesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCompaniesResponse) ProtoMessage() {}

func (x *ListCompaniesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tidebooks_v1_tidebooks_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCompaniesResponse.ProtoReflect.Descriptor instead.
func (*ListCompaniesResponse) Descriptor() ([]byte, []int) {
	return file_tidebooks_v1_tidebooks_proto_rawDescGZIP(), []int{6}
}

func (x *ListCompaniesResponse) GetCompanies() []*Company {
	if x != nil {
		return x.Companies
	}
	return nil
}

type ListEntriesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CompanyId     string                 `protobuf:"bytes,1,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListEntriesRequest) Reset() {
	*x = ListEntriesRequest{}
	mi := &file_tidebooks_v1_tidebooks_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListEntriesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListEntriesRequest) ProtoMessage() {}

func (x *ListEntriesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tidebooks_v1_tidebooks_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListEntriesRequest.ProtoReflect.Descriptor instead.
func (*ListEntriesRequest) Descriptor() ([]byte, []int) {
	return file_tidebooks_v1_tidebooks_proto_rawDescGZIP(), []int{7}
}

func (x *ListEntriesRequest) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

type ListEntriesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Entries       []*LedgerEntry         `protobuf:"bytes,1,rep,name=entries,proto3" json:"entries,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListEntriesResponse) Reset() {
	*x = ListEntriesResponse{}
	mi := &file_tidebooks_v1_tidebooks_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListEntriesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListEntriesResponse) ProtoMessage() {}

func (x *ListEntriesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tidebooks_v1_tidebooks_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListEntriesResponse.ProtoReflect.Descriptor instead.
func (*ListEntriesResponse) Descriptor() ([]byte, []int) {
	return file_tidebooks_v1_tidebooks_proto_rawDescGZIP(), []int{8}
}

func (x *ListEntriesResponse) GetEntries() []*LedgerEntry {
	if x != nil {
		return x.Entries
	}
	return nil
}

type GetSummaryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CompanyId     string                 `protobuf:"bytes,1,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSummaryRequest) Reset() {
	*x = GetSummaryRequest{}
	mi := &file_tidebooks_v1_tidebooks_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSummaryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSummaryRequest) ProtoMessage() {}

func (x *GetSummaryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tidebooks_v1_tidebooks_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSummaryRequest.ProtoReflect.Descriptor instead.
func (*GetSummaryRequest) Descriptor() ([]byte, []int) {
	return file_tidebooks_v1_tidebooks_proto_rawDescGZIP(), []int{9}
}

func (x *GetSummaryRequest) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

type GetSummaryResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	TotalByCategory map[string]float64     `protobuf:"bytes,1,rep,name=total_by_category,json=totalByCategory,proto3" json:"total_by_category,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"fixed64,2,opt,name=value"`
	GrandTotal      float64                `protobuf:"fixed64,2,opt,name=grand_total,json=grandTotal,proto3" json:"grand_total,omitempty"`
	EntryCount      uint32                 `protobuf:"varint,3,opt,name=entry_count,json=entryCount,proto3" json:"entry_count,omitempty"`
	LastActivity    string                 `protobuf:"bytes,4,opt,name=last_activity,json=lastActivity,proto3" json:"last_activity,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *GetSummaryResponse) Reset() {
	*x = GetSummaryResponse{}
	mi := &file_tidebooks_v1_tidebooks_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSummaryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSummaryResponse) ProtoMessage() {}

func (x *GetSummaryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tidebooks_v1_tidebooks_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSummaryResponse.ProtoReflect.Descriptor instead.
func (*GetSummaryResponse) Descriptor() ([]byte, []int) {
	return file_tidebooks_v1_tidebooks_proto_rawDescGZIP(), []int{10}
}

func (x *GetSummaryResponse) GetTotalByCategory() map[string]float64 {
	if x != nil {
		return x.TotalByCategory
	}
	return nil
}

func (x *GetSummaryResponse) GetGrandTotal() float64 {
	if x != nil {
		return x.GrandTotal
	}
	return 0
}

func (x *GetSummaryResponse) GetEntryCount() uint32 {
	if x != nil {
		return x.EntryCount
	}
	return 0
}

func (x *GetSummaryResponse) GetLastActivity() string {
	if x != nil {
		return x.LastActivity
	}
	return ""
}

type CreateManualEntryRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	CompanyId string                 `protobuf:"bytes,1,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	// JSON document matching the ledger entry schema.
	EntryJson     string `protobuf:"bytes,2,opt,name=entry_json,json=entryJson,proto3" json:"entry_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateManualEntryRequest) Reset() {
	*x = CreateManualEntryRequest{}
	mi := &file_tidebooks_v1_tidebooks_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateManualEntryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateManualEntryRequest) ProtoMessage() {}

func (x *CreateManualEntryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tidebooks_v1_tidebooks_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateManualEntryRequest.ProtoReflect.Descriptor instead.
func (*CreateManualEntryRequest) Descriptor() ([]byte, []int) {
	return file_tidebooks_v1_tidebooks_proto_rawDescGZIP(), []int{11}
}

func (x *CreateManualEntryRequest) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

func (x *CreateManualEntryRequest) GetEntryJson() string {
	if x != nil {
		return x.EntryJson
	}
	return ""
}

type CreateManualEntryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Entry         *LedgerEntry           `protobuf:"bytes,1,opt,name=entry,proto3" json:"entry,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateManualEntryResponse) Reset() {
	*x = CreateManualEntryResponse{}
	mi := &file_tidebooks_v1_tidebooks_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateManualEntryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateManualEntryResponse) ProtoMessage() {}

func (x *CreateManualEntryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tidebooks_v1_tidebooks_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateManualEntryResponse.ProtoReflect.Descriptor instead.
func (*CreateManualEntryResponse) Descriptor() ([]byte, []int) {
	return file_tidebooks_v1_tidebooks_proto_rawDescGZIP(), []int{12}
}

func (x *CreateManualEntryResponse) GetEntry() *LedgerEntry {
	if x != nil {
		return x.Entry
	}
	return nil
}

type IngestFileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CompanyId     string                 `protobuf:"bytes,1,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	Path          string                 `protobuf:"bytes,2,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestFileRequest) Reset() {
	*x = IngestFileRequest{}
	mi := &file_tidebooks_v1_tidebooks_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestFileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestFileRequest) ProtoMessage() {}

func (x *IngestFileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tidebooks_v1_tidebooks_proto_msgTypes[13]
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
	return file_tidebooks_v1_tidebooks_proto_rawDescGZIP(), []int{13}
}

func (x *IngestFileRequest) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

func (x *IngestFileRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type IngestResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	DocumentId     string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Deduplicated   bool                   `protobuf:"varint,2,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,3,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	FileExt        string                 `protobuf:"bytes,4,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	UploadedAt     string                 `protobuf:"bytes,5,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	SourcePath     string                 `protobuf:"bytes,6,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	Error          string                 `protobuf:"bytes,7,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *IngestResponse) Reset() {
	*x = IngestResponse{}
	mi := &file_tidebooks_v1_tidebooks_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestResponse) ProtoMessage() {}

func (x *IngestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tidebooks_v1_tidebooks_proto_msgTypes[14]
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
	return file_tidebooks_v1_tidebooks_proto_rawDescGZIP(), []int{14}
}

func (x *IngestResponse) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
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

func (x *IngestResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type IngestDirectoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CompanyId     string                 `protobuf:"bytes,1,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	RootPath      string                 `protobuf:"bytes,2,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"`
	SkipHidden    bool                   `protobuf:"varint,3,opt,name=skip_hidden,json=skipHidden,proto3" json:"skip_hidden,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryRequest) Reset() {
	*x = IngestDirectoryRequest{}
	mi := &file_tidebooks_v1_tidebooks_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryRequest) ProtoMessage() {}

func (x *IngestDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tidebooks_v1_tidebooks_proto_msgTypes[15]
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
	return file_tidebooks_v1_tidebooks_proto_rawDescGZIP(), []int{15}
}

func (x *IngestDirectoryRequest) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
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
	Results       []*IngestResponse      `protobuf:"bytes,1,rep,name=results,proto3" json:"results,omitempty"`
	Scanned       uint32                 `protobuf:"varint,2,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Matched       uint32                 `protobuf:"varint,3,opt,name=matched,proto3" json:"matched,omitempty"`
	Succeeded     uint32                 `protobuf:"varint,4,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Deduplicated  uint32                 `protobuf:"varint,5,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	Failed        uint32                 `protobuf:"varint,6,opt,name=failed,proto3" json:"failed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryResponse) Reset() {
	*x = IngestDirectoryResponse{}
	mi := &file_tidebooks_v1_tidebooks_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryResponse) ProtoMessage() {}

func (x *IngestDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tidebooks_v1_tidebooks_proto_msgTypes[16]
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
	return file_tidebooks_v1_tidebooks_proto_rawDescGZIP(), []int{16}
}

func (x *IngestDirectoryResponse) GetResults() []*IngestResponse {
	if x != nil {
		return x.Results
	}
	return nil
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

type GenerateQuarterlyReportRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	CompanyId string                 `protobuf:"bytes,1,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	// Q1..Q4
	Quarter       string `protobuf:"bytes,2,opt,name=quarter,proto3" json:"quarter,omitempty"`
	FinancialYear string `protobuf:"bytes,3,opt,name=financial_year,json=financialYear,proto3" json:"financial_year,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateQuarterlyReportRequest) Reset() {
	*x = GenerateQuarterlyReportRequest{}
	mi := &file_tidebooks_v1_tidebooks_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateQuarterlyReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateQuarterlyReportRequest) ProtoMessage() {}

func (x *GenerateQuarterlyReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tidebooks_v1_tidebooks_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateQuarterlyReportRequest.ProtoReflect.Descriptor instead.
func (*GenerateQuarterlyReportRequest) Descriptor() ([]byte, []int) {
	return file_tidebooks_v1_tidebooks_proto_rawDescGZIP(), []int{17}
}

func (x *GenerateQuarterlyReportRequest) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

func (x *GenerateQuarterlyReportRequest) GetQuarter() string {
	if x != nil {
		return x.Quarter
	}
	return ""
}

func (x *GenerateQuarterlyReportRequest) GetFinancialYear() string {
	if x != nil {
		return x.FinancialYear
	}
	return ""
}

type GenerateAnnualReportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CompanyId     string                 `protobuf:"bytes,1,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	FinancialYear int32                  `protobuf:"varint,2,opt,name=financial_year,json=financialYear,proto3" json:"financial_year,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateAnnualReportRequest) Reset() {
	*x = GenerateAnnualReportRequest{}
	mi := &file_tidebooks_v1_tidebooks_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateAnnualReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateAnnualReportRequest) ProtoMessage() {}

func (x *GenerateAnnualReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tidebooks_v1_tidebooks_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateAnnualReportRequest.ProtoReflect.Descriptor instead.
func (*GenerateAnnualReportRequest) Descriptor() ([]byte, []int) {
	return file_tidebooks_v1_tidebooks_proto_rawDescGZIP(), []int{18}
}

func (x *GenerateAnnualReportRequest) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

func (x *GenerateAnnualReportRequest) GetFinancialYear() int32 {
	if x != nil {
		return x.FinancialYear
	}
	return 0
}

type ReportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	Xlsx          []byte                 `protobuf:"bytes,2,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReportResponse) Reset() {
	*x = ReportResponse{}
	mi := &file_tidebooks_v1_tidebooks_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReportResponse) ProtoMessage() {}

func (x *ReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tidebooks_v1_tidebooks_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReportResponse.ProtoReflect.Descriptor instead.
func (*ReportResponse) Descriptor() ([]byte, []int) {
	return file_tidebooks_v1_tidebooks_proto_rawDescGZIP(), []int{19}
}

func (x *ReportResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ReportResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_tidebooks_v1_tidebooks_proto protoreflect.FileDescriptor

const file_tidebooks_v1_tidebooks_proto_rawDesc = "" +
	"\n" +
	"\x1ctidebooks/v1/tidebooks.proto\x12\ftidebooks.v1\"\x90\x01\n" +
	"\aCompany\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12#\n" +
	"\rcurrency_code\x18\x03 \x01(\tR\fcurrencyCode\x12\x1d\n" +
	"\n" +
	"created_at\x18\x04 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x05 \x01(\tR\tupdatedAt\"R\n" +
	"\n" +
	"LedgerItem\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x14\n" +
	"\x05price\x18\x02 \x01(\tR\x05price\x12\x1a\n" +
	"\bcategory\x18\x03 \x01(\tR\bcategory\"\xa5\x02\n" +
	"\vLedgerEntry\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"company_id\x18\x02 \x01(\tR\tcompanyId\x12!\n" +
	"\fcompany_name\x18\x03 \x01(\tR\vcompanyName\x12\x1d\n" +
	"\n" +
	"entry_date\x18\x04 \x01(\tR\tentryDate\x12\x1d\n" +
	"\n" +
	"store_name\x18\x05 \x01(\tR\tstoreName\x12\x14\n" +
	"\x05total\x18\x06 \x01(\x01R\x05total\x12.\n" +
	"\x05items\x18\a \x03(\v2\x18.tidebooks.v1.LedgerItemR\x05items\x12!\n" +
	"\fneeds_review\x18\b \x01(\bR\vneedsReview\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt\"O\n" +
	"\x14CreateCompanyRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12#\n" +
	"\rcurrency_code\x18\x02 \x01(\tR\fcurrencyCode\"H\n" +
	"\x15CreateCompanyResponse\x12/\n" +
	"\acompany\x18\x01 \x01(\v2\x15.tidebooks.v1.CompanyR\acompany\"\x16\n" +
	"\x14ListCompaniesRequest\"L\n" +
	"\x15ListCompaniesResponse\x123\n" +
	"\tcompanies\x18\x01 \x03(\v2\x15.tidebooks.v1.CompanyR\tcompanies\"3\n" +
	"\x12ListEntriesRequest\x12\x1d\n" +
	"\n" +
	"company_id\x18\x01 \x01(\tR\tcompanyId\"J\n" +
	"\x13ListEntriesResponse\x123\n" +
	"\aentries\x18\x01 \x03(\v2\x19.tidebooks.v1.LedgerEntryR\aentries\"2\n" +
	"\x11GetSummaryRequest\x12\x1d\n" +
	"\n" +
	"company_id\x18\x01 \x01(\tR\tcompanyId\"\xa2\x02\n" +
	"\x12GetSummaryResponse\x12a\n" +
	"\x11total_by_category\x18\x01 \x03(\v25.tidebooks.v1.GetSummaryResponse.TotalByCategoryEntryR\x0ftotalByCategory\x12\x1f\n" +
	"\vgrand_total\x18\x02 \x01(\x01R\n" +
	"grandTotal\x12\x1f\n" +
	"\ventry_count\x18\x03 \x01(\rR\n" +
	"entryCount\x12#\n" +
	"\rlast_activity\x18\x04 \x01(\tR\flastActivity\x1aB\n" +
	"\x14TotalByCategoryEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x01R\x05value:\x028\x01\"X\n" +
	"\x18CreateManualEntryRequest\x12\x1d\n" +
	"\n" +
	"company_id\x18\x01 \x01(\tR\tcompanyId\x12\x1d\n" +
	"\n" +
	"entry_json\x18\x02 \x01(\tR\tentryJson\"L\n" +
	"\x19CreateManualEntryResponse\x12/\n" +
	"\x05entry\x18\x01 \x01(\v2\x19.tidebooks.v1.LedgerEntryR\x05entry\"F\n" +
	"\x11IngestFileRequest\x12\x1d\n" +
	"\n" +
	"company_id\x18\x01 \x01(\tR\tcompanyId\x12\x12\n" +
	"\x04path\x18\x02 \x01(\tR\x04path\"\xf2\x01\n" +
	"\x0eIngestResponse\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\"\n" +
	"\fdeduplicated\x18\x02 \x01(\bR\fdeduplicated\x12(\n" +
	"\x10content_hash_hex\x18\x03 \x01(\tR\x0econtentHashHex\x12\x19\n" +
	"\bfile_ext\x18\x04 \x01(\tR\afileExt\x12\x1f\n" +
	"\vuploaded_at\x18\x05 \x01(\tR\n" +
	"uploadedAt\x12\x1f\n" +
	"\vsource_path\x18\x06 \x01(\tR\n" +
	"sourcePath\x12\x14\n" +
	"\x05error\x18\a \x01(\tR\x05error\"u\n" +
	"\x16IngestDirectoryRequest\x12\x1d\n" +
	"\n" +
	"company_id\x18\x01 \x01(\tR\tcompanyId\x12\x1b\n" +
	"\troot_path\x18\x02 \x01(\tR\brootPath\x12\x1f\n" +
	"\vskip_hidden\x18\x03 \x01(\bR\n" +
	"skipHidden\"\xdf\x01\n" +
	"\x17IngestDirectoryResponse\x126\n" +
	"\aresults\x18\x01 \x03(\v2\x1c.tidebooks.v1.IngestResponseR\aresults\x12\x18\n" +
	"\ascanned\x18\x02 \x01(\rR\ascanned\x12\x18\n" +
	"\amatched\x18\x03 \x01(\rR\amatched\x12\x1c\n" +
	"\tsucceeded\x18\x04 \x01(\rR\tsucceeded\x12\"\n" +
	"\fdeduplicated\x18\x05 \x01(\rR\fdeduplicated\x12\x16\n" +
	"\x06failed\x18\x06 \x01(\rR\x06failed\"\x80\x01\n" +
	"\x1eGenerateQuarterlyReportRequest\x12\x1d\n" +
	"\n" +
	"company_id\x18\x01 \x01(\tR\tcompanyId\x12\x18\n" +
	"\aquarter\x18\x02 \x01(\tR\aquarter\x12%\n" +
	"\x0efinancial_year\x18\x03 \x01(\tR\rfinancialYear\"c\n" +
	"\x1bGenerateAnnualReportRequest\x12\x1d\n" +
	"\n" +
	"company_id\x18\x01 \x01(\tR\tcompanyId\x12%\n" +
	"\x0efinancial_year\x18\x02 \x01(\x05R\rfinancialYear\"@\n" +
	"\x0eReportResponse\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x12\n" +
	"\x04xlsx\x18\x02 \x01(\fR\x04xlsx2\xce\x03\n" +
	"\rLedgerService\x12X\n" +
	"\rCreateCompany\x12\".tidebooks.v1.CreateCompanyRequest\x1a#.tidebooks.v1.CreateCompanyResponse\x12X\n" +
	"\rListCompanies\x12\".tidebooks.v1.ListCompaniesRequest\x1a#.tidebooks.v1.ListCompaniesResponse\x12R\n" +
	"\vListEntries\x12 .tidebooks.v1.ListEntriesRequest\x1a!.tidebooks.v1.ListEntriesResponse\x12O\n" +
	"\n" +
	"GetSummary\x12\x1f.tidebooks.v1.GetSummaryRequest\x1a .tidebooks.v1.GetSummaryResponse\x12d\n" +
	"\x11CreateManualEntry\x12&.tidebooks.v1.CreateManualEntryRequest\x1a'.tidebooks.v1.CreateManualEntryResponse2\xbf\x01\n" +
	"\x10IngestionService\x12K\n" +
	"\n" +
	"IngestFile\x12\x1f.tidebooks.v1.IngestFileRequest\x1a\x1c.tidebooks.v1.IngestResponse\x12^\n" +
	"\x0fIngestDirectory\x12$.tidebooks.v1.IngestDirectoryRequest\x1a%.tidebooks.v1.IngestDirectoryResponse2\xd7\x01\n" +
	"\rReportService\x12e\n" +
	"\x17GenerateQuarterlyReport\x12,.tidebooks.v1.GenerateQuarterlyReportRequest\x1a\x1c.tidebooks.v1.ReportResponse\x12_\n" +
	"\x14GenerateAnnualReport\x12).tidebooks.v1.GenerateAnnualReportRequest\x1a\x1c.tidebooks.v1.ReportResponseBCZAgithub.com/tidebooks/tidebooks/gen/proto/tidebooks/v1;tidebookspbb\x06proto3"

var (
	file_tidebooks_v1_tidebooks_proto_rawDescOnce sync.Once
	file_tidebooks_v1_tidebooks_proto_rawDescData []byte
)

func file_tidebooks_v1_tidebooks_proto_rawDescGZIP() []byte {
	file_tidebooks_v1_tidebooks_proto_rawDescOnce.Do(func() {
		file_tidebooks_v1_tidebooks_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_tidebooks_v1_tidebooks_proto_rawDesc), len(file_tidebooks_v1_tidebooks_proto_rawDesc)))
	})
	return file_tidebooks_v1_tidebooks_proto_rawDescData
}

var file_tidebooks_v1_tidebooks_proto_msgTypes = make([]protoimpl.MessageInfo, 21)
var file_tidebooks_v1_tidebooks_proto_goTypes = []any{
	(*Company)(nil),                        // 0: tidebooks.v1.Company
	(*LedgerItem)(nil),                     // 1: tidebooks.v1.LedgerItem
	(*LedgerEntry)(nil),                    // 2: tidebooks.v1.LedgerEntry
	(*CreateCompanyRequest)(nil),           // 3: tidebooks.v1.CreateCompanyRequest
	(*CreateCompanyResponse)(nil),          // 4: tidebooks.v1.CreateCompanyResponse
	(*ListCompaniesRequest)(nil),           // 5: tidebooks.v1.ListCompaniesRequest
	(*ListCompaniesResponse)(nil),          // 6: tidebooks.v1.ListCompaniesResponse
	(*ListEntriesRequest)(nil),             // 7: tidebooks.v1.ListEntriesRequest
	(*ListEntriesResponse)(nil),            // 8: tidebooks.v1.ListEntriesResponse
	(*GetSummaryRequest)(nil),              // 9: tidebooks.v1.GetSummaryRequest
	(*GetSummaryResponse)(nil),             // 10: tidebooks.v1.GetSummaryResponse
	(*CreateManualEntryRequest)(nil),       // 11: tidebooks.v1.CreateManualEntryRequest
	(*CreateManualEntryResponse)(nil),      // 12: tidebooks.v1.CreateManualEntryResponse
	(*IngestFileRequest)(nil),              // 13: tidebooks.v1.IngestFileRequest
	(*IngestResponse)(nil),                 // 14: tidebooks.v1.IngestResponse
	(*IngestDirectoryRequest)(nil),         // 15: tidebooks.v1.IngestDirectoryRequest
	(*IngestDirectoryResponse)(nil),        // 16: tidebooks.v1.IngestDirectoryResponse
	(*GenerateQuarterlyReportRequest)(nil), // 17: tidebooks.v1.GenerateQuarterlyReportRequest
	(*GenerateAnnualReportRequest)(nil),    // 18: tidebooks.v1.GenerateAnnualReportRequest
	(*ReportResponse)(nil),                 // 19: tidebooks.v1.ReportResponse
	nil,                                    // 20: tidebooks.v1.GetSummaryResponse.TotalByCategoryEntry
}
var file_tidebooks_v1_tidebooks_proto_depIdxs = []int32{
	1,  // 0: tidebooks.v1.LedgerEntry.items:type_name -> tidebooks.v1.LedgerItem
	0,  // 1: tidebooks.v1.CreateCompanyResponse.company:type_name -> tidebooks.v1.Company
	0,  // 2: tidebooks.v1.ListCompaniesResponse.companies:type_name -> tidebooks.v1.Company
	2,  // 3: tidebooks.v1.ListEntriesResponse.entries:type_name -> tidebooks.v1.LedgerEntry
	20, // 4: tidebooks.v1.GetSummaryResponse.total_by_category:type_name -> tidebooks.v1.GetSummaryResponse.TotalByCategoryEntry
	2,  // 5: tidebooks.v1.CreateManualEntryResponse.entry:type_name -> tidebooks.v1.LedgerEntry
	14, // 6: tidebooks.v1.IngestDirectoryResponse.results:type_name -> tidebooks.v1.IngestResponse
	3,  // 7: tidebooks.v1.LedgerService.CreateCompany:input_type -> tidebooks.v1.CreateCompanyRequest
	5,  // 8: tidebooks.v1.LedgerService.ListCompanies:input_type -> tidebooks.v1.ListCompaniesRequest
	7,  // 9: tidebooks.v1.LedgerService.ListEntries:input_type -> tidebooks.v1.ListEntriesRequest
	9,  // 10: tidebooks.v1.LedgerService.GetSummary:input_type -> tidebooks.v1.GetSummaryRequest
	11, // 11: tidebooks.v1.LedgerService.CreateManualEntry:input_type -> tidebooks.v1.CreateManualEntryRequest
	13, // 12: tidebooks.v1.IngestionService.IngestFile:input_type -> tidebooks.v1.IngestFileRequest
	15, // 13: tidebooks.v1.IngestionService.IngestDirectory:input_type -> tidebooks.v1.IngestDirectoryRequest
	17, // 14: tidebooks.v1.ReportService.GenerateQuarterlyReport:input_type -> tidebooks.v1.GenerateQuarterlyReportRequest
	18, // 15: tidebooks.v1.ReportService.GenerateAnnualReport:input_type -> tidebooks.v1.GenerateAnnualReportRequest
	4,  // 16: tidebooks.v1.LedgerService.CreateCompany:output_type -> tidebooks.v1.CreateCompanyResponse
	6,  // 17: tidebooks.v1.LedgerService.ListCompanies:output_type -> tidebooks.v1.ListCompaniesResponse
	8,  // 18: tidebooks.v1.LedgerService.ListEntries:output_type -> tidebooks.v1.ListEntriesResponse
	10, // 19: tidebooks.v1.LedgerService.GetSummary:output_type -> tidebooks.v1.GetSummaryResponse
	12, // 20: tidebooks.v1.LedgerService.CreateManualEntry:output_type -> tidebooks.v1.CreateManualEntryResponse
	14, // 21: tidebooks.v1.IngestionService.IngestFile:output_type -> tidebooks.v1.IngestResponse
	16, // 22: tidebooks.v1.IngestionService.IngestDirectory:output_type -> tidebooks.v1.IngestDirectoryResponse
	19, // 23: tidebooks.v1.ReportService.GenerateQuarterlyReport:output_type -> tidebooks.v1.ReportResponse
	19, // 24: tidebooks.v1.ReportService.GenerateAnnualReport:output_type -> tidebooks.v1.ReportResponse
	16, // [16:25] is the sub-list for method output_type
	7,  // [7:16] is the sub-list for method input_type
	7,  // [7:7] is the sub-list for extension type_name
	7,  // [7:7] is the sub-list for extension extendee
	0,  // [0:7] is the sub-list for field type_name
}

func init() { file_tidebooks_v1_tidebooks_proto_init() }
func file_tidebooks_v1_tidebooks_proto_init() {
	if File_tidebooks_v1_tidebooks_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_tidebooks_v1_tidebooks_proto_rawDesc), len(file_tidebooks_v1_tidebooks_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   21,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_tidebooks_v1_tidebooks_proto_goTypes,
		DependencyIndexes: file_tidebooks_v1_tidebooks_proto_depIdxs,
		MessageInfos:      file_tidebooks_v1_tidebooks_proto_msgTypes,
	}.Build()
	File_tidebooks_v1_tidebooks_proto = out.File
	file_tidebooks_v1_tidebooks_proto_goTypes = nil
	file_tidebooks_v1_tidebooks_proto_depIdxs = nil
}
