package grpc

import (
	"errors"
	"strconv"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/inkpresscms/inkpress/internal/common"
	pb "github.com/inkpresscms/inkpress/internal/proto"
	"github.com/inkpresscms/inkpress/internal/server/models"
	"github.com/inkpresscms/inkpress/internal/server/repositories/posts"
)

// errToStatus maps the shared error taxonomy onto gRPC codes. Anything not
// in the taxonomy is internal and its message is not echoed to the client.
func errToStatus(err error) error {
	switch {
	case errors.Is(err, common.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrConflict):
		return status.Error(codes.AlreadyExists, "conflict")
	case errors.Is(err, common.ErrUnauthenticated),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, "unauthenticated")
	case errors.Is(err, common.ErrPermissionDenied):
		return status.Error(codes.PermissionDenied, "permission denied")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func epochToProto(sec int64) *timestamppb.Timestamp {
	if sec == 0 {
		return nil
	}
	return timestamppb.New(time.Unix(sec, 0))
}

func protoToEpoch(ts *timestamppb.Timestamp) int64 {
	if ts == nil {
		return 0
	}
	return ts.AsTime().Unix()
}

func statusToProto(s string) pb.Status {
	if s == models.StatusPublished {
		return pb.Status_STATUS_PUBLISHED
	}
	return pb.Status_STATUS_DRAFT
}

func statusFromProto(s pb.Status) string {
	if s == pb.Status_STATUS_PUBLISHED {
		return models.StatusPublished
	}
	return models.StatusDraft
}

// listOptions decodes the pagination envelope; the page token carries the
// skip offset.
func listOptions(q *pb.PageQuery) models.ListOptions {
	opts := models.ListOptions{}
	if q == nil {
		return opts
	}
	opts.Limit = int(q.GetPageSize())
	if skip, err := strconv.Atoi(q.GetPageToken()); err == nil {
		opts.Skip = skip
	}
	return opts
}

// nextPageToken returns the follow-up token when the page came back full,
// meaning more rows may exist.
func nextPageToken(opts models.ListOptions, got int) string {
	norm := opts.Normalize()
	if got < norm.Limit {
		return ""
	}
	return strconv.Itoa(norm.Skip + got)
}

func pageToProto(p *models.Page) *pb.Page {
	blocks := make([]*pb.ContentBlock, 0, len(p.Content))
	for _, b := range p.Content {
		blocks = append(blocks, &pb.ContentBlock{Type: b.Type, Data: b.Data})
	}
	return &pb.Page{
		Id:              p.ID,
		Rev:             p.Rev,
		Title:           p.Title,
		Slug:            p.Slug,
		Content:         blocks,
		MetaDescription: p.MetaDescription,
		Status:          statusToProto(p.Status),
		CreatedAt:       epochToProto(p.CreatedAt),
		UpdatedAt:       epochToProto(p.UpdatedAt),
	}
}

func pageFromProto(p *pb.Page) *models.Page {
	if p == nil {
		return &models.Page{}
	}
	blocks := make([]models.Block, 0, len(p.GetContent()))
	for _, b := range p.GetContent() {
		blocks = append(blocks, models.Block{Type: b.GetType(), Data: b.GetData()})
	}
	return &models.Page{
		ID:              p.GetId(),
		Rev:             p.GetRev(),
		Title:           p.GetTitle(),
		Slug:            p.GetSlug(),
		Content:         blocks,
		MetaDescription: p.GetMetaDescription(),
		Status:          statusFromProto(p.GetStatus()),
	}
}

func postToProto(p *models.BlogPost) *pb.BlogPost {
	out := &pb.BlogPost{
		Id:              p.ID,
		Rev:             p.Rev,
		Title:           p.Title,
		Slug:            p.Slug,
		Excerpt:         p.Excerpt,
		Content:         p.Content,
		Author:          p.Author,
		Categories:      p.Categories,
		Tags:            p.Tags,
		MetaDescription: p.MetaDescription,
		Status:          statusToProto(p.Status),
		CreatedAt:       epochToProto(p.CreatedAt),
		UpdatedAt:       epochToProto(p.UpdatedAt),
	}
	if t, ok := p.EffectivePublishTime(); ok {
		out.PublishedAt = timestamppb.New(t)
	}
	return out
}

func postFromProto(p *pb.BlogPost) *models.BlogPost {
	if p == nil {
		return &models.BlogPost{}
	}
	out := &models.BlogPost{
		ID:              p.GetId(),
		Rev:             p.GetRev(),
		Title:           p.GetTitle(),
		Slug:            p.GetSlug(),
		Excerpt:         p.GetExcerpt(),
		Content:         p.GetContent(),
		Author:          p.GetAuthor(),
		Categories:      p.GetCategories(),
		Tags:            p.GetTags(),
		MetaDescription: p.GetMetaDescription(),
		Status:          statusFromProto(p.GetStatus()),
	}
	if ts := p.GetPublishedAt(); ts != nil {
		out.PublishedAt = ts.AsTime().UTC().Format(time.RFC3339)
	}
	return out
}

func postsToProto(list []*models.BlogPost) []*pb.BlogPost {
	out := make([]*pb.BlogPost, 0, len(list))
	for _, p := range list {
		out = append(out, postToProto(p))
	}
	return out
}

func mediaToProto(m *models.Media) *pb.Media {
	return &pb.Media{
		Id:           m.ID,
		Rev:          m.Rev,
		Filename:     m.Filename,
		OriginalName: m.OriginalName,
		MimeType:     m.MimeType,
		Size:         m.Size,
		Url:          m.URL,
		AltText:      m.AltText,
		UploadedBy:   m.UploadedBy,
		CreatedAt:    epochToProto(m.CreatedAt),
	}
}

func submissionToProto(s *models.ContactSubmission) *pb.ContactSubmission {
	return &pb.ContactSubmission{
		Id:        s.ID,
		Rev:       s.Rev,
		Name:      s.Name,
		Email:     s.Email,
		Company:   s.Company,
		Message:   s.Message,
		Status:    s.Status,
		CreatedAt: epochToProto(s.CreatedAt),
		UpdatedAt: epochToProto(s.UpdatedAt),
	}
}

func facetsToProto(list []posts.FacetCount) []*pb.FacetCount {
	out := make([]*pb.FacetCount, 0, len(list))
	for _, f := range list {
		out = append(out, &pb.FacetCount{Name: f.Name, Count: f.Count})
	}
	return out
}
