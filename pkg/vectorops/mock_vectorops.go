// Hand-written mock of the Primitives interface in primitives.go, in the
// shape MockGen emits.

package vectorops

import (
	reflect "reflect"

	types "github.com/cuulee/duckdb/pkg/container/types"
	vector "github.com/cuulee/duckdb/pkg/container/vector"
	gomock "github.com/golang/mock/gomock"
)

// MockPrimitives is a mock of the Primitives interface, for exercising
// Probe & Classify and Aggregate Update against canned
// hash/scatter/gather behavior instead of the byte-level arithmetic in
// default.go. The pkg/hashtable tests in this module do not use it; they
// wrap Default and override only Hash.
type MockPrimitives struct {
	ctrl     *gomock.Controller
	recorder *MockPrimitivesMockRecorder
}

type MockPrimitivesMockRecorder struct {
	mock *MockPrimitives
}

func NewMockPrimitives(ctrl *gomock.Controller) *MockPrimitives {
	m := &MockPrimitives{ctrl: ctrl}
	m.recorder = &MockPrimitivesMockRecorder{m}
	return m
}

func (m *MockPrimitives) EXPECT() *MockPrimitivesMockRecorder {
	return m.recorder
}

func (m *MockPrimitives) Hash(col *vector.Vector) []uint32 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Hash", col)
	ret0, _ := ret[0].([]uint32)
	return ret0
}

func (mr *MockPrimitivesMockRecorder) Hash(col any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Hash", reflect.TypeOf((*MockPrimitives)(nil).Hash), col)
}

func (m *MockPrimitives) CombineHash(hashes []uint32, col *vector.Vector) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "CombineHash", hashes, col)
}

func (mr *MockPrimitivesMockRecorder) CombineHash(hashes, col any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CombineHash", reflect.TypeOf((*MockPrimitives)(nil).CombineHash), hashes, col)
}

func (m *MockPrimitives) Widen(src []uint32) []uint64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Widen", src)
	ret0, _ := ret[0].([]uint64)
	return ret0
}

func (mr *MockPrimitivesMockRecorder) Widen(src any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Widen", reflect.TypeOf((*MockPrimitives)(nil).Widen), src)
}

func (m *MockPrimitives) Modulo(addrs []uint64, scalar uint64) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Modulo", addrs, scalar)
}

func (mr *MockPrimitivesMockRecorder) Modulo(addrs, scalar any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Modulo", reflect.TypeOf((*MockPrimitives)(nil).Modulo), addrs, scalar)
}

func (m *MockPrimitives) Multiply(addrs []uint64, scalar uint64) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Multiply", addrs, scalar)
}

func (mr *MockPrimitivesMockRecorder) Multiply(addrs, scalar any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Multiply", reflect.TypeOf((*MockPrimitives)(nil).Multiply), addrs, scalar)
}

func (m *MockPrimitives) Add(addrs []uint64, scalar uint64) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Add", addrs, scalar)
}

func (mr *MockPrimitivesMockRecorder) Add(addrs, scalar any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Add", reflect.TypeOf((*MockPrimitives)(nil).Add), addrs, scalar)
}

func (m *MockPrimitives) ScatterSet(buf []byte, addrs []uint64, sel []uint32, col *vector.Vector, typ types.Type) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ScatterSet", buf, addrs, sel, col, typ)
}

func (mr *MockPrimitivesMockRecorder) ScatterSet(buf, addrs, sel, col, typ any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ScatterSet", reflect.TypeOf((*MockPrimitives)(nil).ScatterSet), buf, addrs, sel, col, typ)
}

func (m *MockPrimitives) ScatterSetCount(buf []byte, addrs []uint64, sel []uint32) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ScatterSetCount", buf, addrs, sel)
}

func (mr *MockPrimitivesMockRecorder) ScatterSetCount(buf, addrs, sel any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ScatterSetCount", reflect.TypeOf((*MockPrimitives)(nil).ScatterSetCount), buf, addrs, sel)
}

func (m *MockPrimitives) ScatterAddOne(buf []byte, addrs []uint64, sel []uint32) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ScatterAddOne", buf, addrs, sel)
}

func (mr *MockPrimitivesMockRecorder) ScatterAddOne(buf, addrs, sel any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ScatterAddOne", reflect.TypeOf((*MockPrimitives)(nil).ScatterAddOne), buf, addrs, sel)
}

func (m *MockPrimitives) ScatterAdd(buf []byte, addrs []uint64, sel []uint32, col *vector.Vector, typ types.Type) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ScatterAdd", buf, addrs, sel, col, typ)
}

func (mr *MockPrimitivesMockRecorder) ScatterAdd(buf, addrs, sel, col, typ any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ScatterAdd", reflect.TypeOf((*MockPrimitives)(nil).ScatterAdd), buf, addrs, sel, col, typ)
}

func (m *MockPrimitives) ScatterMin(buf []byte, addrs []uint64, sel []uint32, col *vector.Vector, typ types.Type) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ScatterMin", buf, addrs, sel, col, typ)
}

func (mr *MockPrimitivesMockRecorder) ScatterMin(buf, addrs, sel, col, typ any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ScatterMin", reflect.TypeOf((*MockPrimitives)(nil).ScatterMin), buf, addrs, sel, col, typ)
}

func (m *MockPrimitives) ScatterMax(buf []byte, addrs []uint64, sel []uint32, col *vector.Vector, typ types.Type) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ScatterMax", buf, addrs, sel, col, typ)
}

func (mr *MockPrimitivesMockRecorder) ScatterMax(buf, addrs, sel, col, typ any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ScatterMax", reflect.TypeOf((*MockPrimitives)(nil).ScatterMax), buf, addrs, sel, col, typ)
}

func (m *MockPrimitives) GatherSet(buf []byte, addrs []uint64, typ types.Type, out *vector.Vector) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "GatherSet", buf, addrs, typ, out)
}

func (mr *MockPrimitivesMockRecorder) GatherSet(buf, addrs, typ, out any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GatherSet", reflect.TypeOf((*MockPrimitives)(nil).GatherSet), buf, addrs, typ, out)
}

func (m *MockPrimitives) GatherAverage(buf []byte, addrs []uint64, typ types.Type, countOffset uint64, out *vector.Vector) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GatherAverage", buf, addrs, typ, countOffset, out)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockPrimitivesMockRecorder) GatherAverage(buf, addrs, typ, countOffset, out any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GatherAverage", reflect.TypeOf((*MockPrimitives)(nil).GatherAverage), buf, addrs, typ, countOffset, out)
}

var _ Primitives = (*MockPrimitives)(nil)
