// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"github.com/MKhiriev/anime-saver/models"
	"google.golang.org/grpc"
)

const (
	UserServiceName = "animesaver.v1.UserService"

	GetUserMethod      = "/" + UserServiceName + "/GetUser"
	GetSavedListMethod = "/" + UserServiceName + "/GetSavedList"
)

// UserServiceServer is the read-only user API served over gRPC.
type UserServiceServer interface {
	GetUser(ctx context.Context, req *models.UserIDRequest) (*models.User, error)
	GetSavedList(ctx context.Context, req *models.UserIDRequest) (*models.SavedListResponse, error)
}

// userServiceDesc is written by hand: requests and responses are models
// structs encoded with jsonCodec.
var userServiceDesc = grpc.ServiceDesc{
	ServiceName: UserServiceName,
	HandlerType: (*UserServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetUser", Handler: getUserHandler},
		{MethodName: "GetSavedList", Handler: getSavedListHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "animesaver/v1/user.proto",
}

func getUserHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.UserIDRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserServiceServer).GetUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GetUserMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(UserServiceServer).GetUser(ctx, req.(*models.UserIDRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func getSavedListHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.UserIDRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserServiceServer).GetSavedList(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GetSavedListMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(UserServiceServer).GetSavedList(ctx, req.(*models.UserIDRequest))
	}
	return interceptor(ctx, in, info, handler)
}
