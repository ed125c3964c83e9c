package grpc

import (
	"context"

	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"

	pb "github.com/inkpresscms/inkpress/internal/proto"
	"github.com/inkpresscms/inkpress/internal/server/models"
	"github.com/inkpresscms/inkpress/internal/server/reqmeta"
	"github.com/inkpresscms/inkpress/internal/server/services"
)

func (s *GRPCServer) SavePage(ctx context.Context, req *pb.SavePageRequest) (*pb.SavePageResponse, error) {
	saved, err := s.content.SavePage(ctx, pageFromProto(req.GetPage()))
	if err != nil {
		return nil, errToStatus(err)
	}
	return &pb.SavePageResponse{Page: pageToProto(saved)}, nil
}

func (s *GRPCServer) GetPage(ctx context.Context, req *pb.GetPageRequest) (*pb.GetPageResponse, error) {
	page, err := s.content.GetPage(ctx, req.GetId())
	if err != nil {
		return nil, errToStatus(err)
	}
	return &pb.GetPageResponse{Page: pageToProto(page)}, nil
}

func (s *GRPCServer) GetPageBySlug(ctx context.Context, req *pb.GetPageBySlugRequest) (*pb.GetPageResponse, error) {
	page, err := s.content.GetPageBySlug(ctx, req.GetSlug())
	if err != nil {
		return nil, errToStatus(err)
	}
	return &pb.GetPageResponse{Page: pageToProto(page)}, nil
}

func (s *GRPCServer) ListPages(ctx context.Context, req *pb.ListPagesRequest) (*pb.ListPagesResponse, error) {
	opts := listOptions(req.GetQuery())
	pages, err := s.content.ListPages(ctx, req.GetStatus(), opts)
	if err != nil {
		return nil, errToStatus(err)
	}
	out := make([]*pb.Page, 0, len(pages))
	for _, p := range pages {
		out = append(out, pageToProto(p))
	}
	return &pb.ListPagesResponse{Pages: out, NextPageToken: nextPageToken(opts, len(pages))}, nil
}

func (s *GRPCServer) DeletePage(ctx context.Context, req *pb.DeletePageRequest) (*pb.DeletePageResponse, error) {
	if err := s.content.DeletePage(ctx, req.GetId()); err != nil {
		return nil, errToStatus(err)
	}
	return &pb.DeletePageResponse{}, nil
}

func (s *GRPCServer) SavePost(ctx context.Context, req *pb.SavePostRequest) (*pb.SavePostResponse, error) {
	saved, err := s.content.SavePost(ctx, postFromProto(req.GetPost()))
	if err != nil {
		return nil, errToStatus(err)
	}
	return &pb.SavePostResponse{Post: postToProto(saved)}, nil
}

func (s *GRPCServer) GetPost(ctx context.Context, req *pb.GetPostRequest) (*pb.GetPostResponse, error) {
	post, err := s.content.GetPost(ctx, req.GetId())
	if err != nil {
		return nil, errToStatus(err)
	}
	return &pb.GetPostResponse{Post: postToProto(post)}, nil
}

func (s *GRPCServer) GetPostBySlug(ctx context.Context, req *pb.GetPostBySlugRequest) (*pb.GetPostResponse, error) {
	post, err := s.content.GetPostBySlug(ctx, req.GetSlug())
	if err != nil {
		return nil, errToStatus(err)
	}
	return &pb.GetPostResponse{Post: postToProto(post)}, nil
}

func (s *GRPCServer) ListPosts(ctx context.Context, req *pb.ListPostsRequest) (*pb.ListPostsResponse, error) {
	opts := listOptions(req.GetQuery())
	filter := services.PostFilter{
		Status:   req.GetStatus(),
		Author:   req.GetAuthor(),
		Category: req.GetCategory(),
		Tag:      req.GetTag(),
	}
	list, err := s.content.ListPosts(ctx, filter, opts)
	if err != nil {
		return nil, errToStatus(err)
	}
	return &pb.ListPostsResponse{Posts: postsToProto(list), NextPageToken: nextPageToken(opts, len(list))}, nil
}

func (s *GRPCServer) ListPublishedPosts(ctx context.Context, req *pb.ListPublishedPostsRequest) (*pb.ListPostsResponse, error) {
	opts := listOptions(req.GetQuery())
	list, err := s.content.ListPublishedPosts(ctx, opts)
	if err != nil {
		return nil, errToStatus(err)
	}
	return &pb.ListPostsResponse{Posts: postsToProto(list), NextPageToken: nextPageToken(opts, len(list))}, nil
}

func (s *GRPCServer) SearchPosts(ctx context.Context, req *pb.SearchPostsRequest) (*pb.ListPostsResponse, error) {
	opts := listOptions(req.GetQuery())
	list, err := s.content.SearchPosts(ctx, req.GetToken(), opts)
	if err != nil {
		return nil, errToStatus(err)
	}
	return &pb.ListPostsResponse{Posts: postsToProto(list), NextPageToken: nextPageToken(opts, len(list))}, nil
}

func (s *GRPCServer) FacetCounts(ctx context.Context, req *pb.FacetCountsRequest) (*pb.FacetCountsResponse, error) {
	categories, err := s.content.CategoryCounts(ctx)
	if err != nil {
		return nil, errToStatus(err)
	}
	tags, err := s.content.TagCounts(ctx)
	if err != nil {
		return nil, errToStatus(err)
	}
	return &pb.FacetCountsResponse{
		Categories: facetsToProto(categories),
		Tags:       facetsToProto(tags),
	}, nil
}

func (s *GRPCServer) DeletePost(ctx context.Context, req *pb.DeletePostRequest) (*pb.DeletePostResponse, error) {
	if err := s.content.DeletePost(ctx, req.GetId()); err != nil {
		return nil, errToStatus(err)
	}
	return &pb.DeletePostResponse{}, nil
}

func (s *GRPCServer) BeginUpload(ctx context.Context, req *pb.BeginUploadRequest) (*pb.BeginUploadResponse, error) {
	m, _ := reqmeta.FromContext(ctx)
	saved, url, err := s.media.BeginUpload(ctx, services.UploadRequest{
		OriginalName: req.GetOriginalName(),
		MimeType:     req.GetMimeType(),
		Size:         req.GetSize(),
		ContentHash:  req.GetContentHash(),
		AltText:      req.GetAltText(),
		UploadedBy:   m.UserID,
	})
	if err != nil {
		return nil, errToStatus(err)
	}
	return &pb.BeginUploadResponse{Media: mediaToProto(saved), UploadUrl: url}, nil
}

func (s *GRPCServer) GetMedia(ctx context.Context, req *pb.GetMediaRequest) (*pb.GetMediaResponse, error) {
	m, err := s.media.Get(ctx, req.GetId())
	if err != nil {
		return nil, errToStatus(err)
	}
	return &pb.GetMediaResponse{Media: mediaToProto(m)}, nil
}

func (s *GRPCServer) ListMedia(ctx context.Context, req *pb.ListMediaRequest) (*pb.ListMediaResponse, error) {
	opts := listOptions(req.GetQuery())
	list, err := s.media.List(ctx, opts)
	if err != nil {
		return nil, errToStatus(err)
	}
	out := make([]*pb.Media, 0, len(list))
	for _, m := range list {
		out = append(out, mediaToProto(m))
	}
	return &pb.ListMediaResponse{Media: out, NextPageToken: nextPageToken(opts, len(list))}, nil
}

func (s *GRPCServer) GetDownloadUrl(ctx context.Context, req *pb.GetDownloadUrlRequest) (*pb.GetDownloadUrlResponse, error) {
	url, err := s.media.DownloadURL(ctx, req.GetId())
	if err != nil {
		return nil, errToStatus(err)
	}
	return &pb.GetDownloadUrlResponse{Url: url}, nil
}

func (s *GRPCServer) DeleteMedia(ctx context.Context, req *pb.DeleteMediaRequest) (*pb.DeleteMediaResponse, error) {
	if err := s.media.Delete(ctx, req.GetId()); err != nil {
		return nil, errToStatus(err)
	}
	return &pb.DeleteMediaResponse{}, nil
}

// callerNetwork extracts the remote address and user agent for the
// submission audit fields.
func callerNetwork(ctx context.Context) (ip, userAgent string) {
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		ip = p.Addr.String()
	}
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get("user-agent"); len(values) > 0 {
			userAgent = values[0]
		}
	}
	return ip, userAgent
}

func (s *GRPCServer) SubmitContact(ctx context.Context, req *pb.SubmitContactRequest) (*pb.SubmitContactResponse, error) {
	ip, userAgent := callerNetwork(ctx)
	saved, err := s.submissions.Submit(ctx, &models.ContactSubmission{
		Name:    req.GetName(),
		Email:   req.GetEmail(),
		Company: req.GetCompany(),
		Message: req.GetMessage(),
	}, ip, userAgent)
	if err != nil {
		return nil, errToStatus(err)
	}
	return &pb.SubmitContactResponse{Submission: submissionToProto(saved)}, nil
}

func (s *GRPCServer) ListSubmissions(ctx context.Context, req *pb.ListSubmissionsRequest) (*pb.ListSubmissionsResponse, error) {
	opts := listOptions(req.GetQuery())
	list, err := s.submissions.List(ctx, req.GetStatus(), opts)
	if err != nil {
		return nil, errToStatus(err)
	}
	out := make([]*pb.ContactSubmission, 0, len(list))
	for _, sub := range list {
		out = append(out, submissionToProto(sub))
	}
	return &pb.ListSubmissionsResponse{Submissions: out, NextPageToken: nextPageToken(opts, len(list))}, nil
}

func (s *GRPCServer) SetSubmissionStatus(ctx context.Context, req *pb.SetSubmissionStatusRequest) (*pb.SetSubmissionStatusResponse, error) {
	updated, err := s.submissions.SetStatus(ctx, req.GetId(), req.GetStatus())
	if err != nil {
		return nil, errToStatus(err)
	}
	return &pb.SetSubmissionStatusResponse{Submission: submissionToProto(updated)}, nil
}

func (s *GRPCServer) DeleteSubmission(ctx context.Context, req *pb.DeleteSubmissionRequest) (*pb.DeleteSubmissionResponse, error) {
	if err := s.submissions.Delete(ctx, req.GetId()); err != nil {
		return nil, errToStatus(err)
	}
	return &pb.DeleteSubmissionResponse{}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}
