package service

import (
	"context"

	"github.com/MKhiriev/go-bloglist/internal/logger"
	"github.com/MKhiriev/go-bloglist/internal/store"
	"github.com/MKhiriev/go-bloglist/internal/utils"
	"github.com/MKhiriev/go-bloglist/models"
)

type blogService struct {
	blogRepository store.BlogRepository
	idGenerator    idGenerator

	logger *logger.Logger
}

func NewBlogService(blogRepository store.BlogRepository, logger *logger.Logger) BlogService {
	return &blogService{
		blogRepository: blogRepository,
		idGenerator:    utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

func (b *blogService) List(ctx context.Context) ([]models.Blog, error) {
	return b.blogRepository.ListBlogs(ctx)
}

// Create stores a blog owned by actor. Likes default to zero.
func (b *blogService) Create(ctx context.Context, req models.CreateBlogRequest, actor models.TokenClaims) (models.Blog, error) {
	if actor.ID == "" {
		return models.Blog{}, ErrTokenWithoutUser
	}

	likes := 0
	if req.Likes != nil {
		likes = *req.Likes
	}

	blog, err := b.blogRepository.CreateBlog(ctx, models.Blog{
		ID:     b.idGenerator.Generate(),
		Title:  req.Title,
		URL:    req.URL,
		Author: req.Author,
		Likes:  likes,
		UserID: actor.ID,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*blogService.Create").Str("user_id", actor.ID).Msg("error creating blog")
		return models.Blog{}, err
	}

	return blog, nil
}

// Update applies update to the blog with the given id if actor created it.
func (b *blogService) Update(ctx context.Context, id string, update models.BlogUpdate, actor models.TokenClaims) (models.Blog, error) {
	id, err := b.ownedBlogID(ctx, id, actor)
	if err != nil {
		return models.Blog{}, err
	}

	blog, err := b.blogRepository.UpdateBlog(ctx, id, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*blogService.Update").Str("blog_id", id).Msg("error updating blog")
		return models.Blog{}, err
	}

	return blog, nil
}

// Delete removes the blog with the given id if actor created it.
func (b *blogService) Delete(ctx context.Context, id string, actor models.TokenClaims) error {
	id, err := b.ownedBlogID(ctx, id, actor)
	if err != nil {
		return err
	}

	if err = b.blogRepository.DeleteBlog(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*blogService.Delete").Str("blog_id", id).Msg("error deleting blog")
		return err
	}

	logger.FromContext(ctx).Info().Str("func", "*blogService.Delete").Str("blog_id", id).Msg("blog deleted")
	return nil
}

// ownedBlogID normalizes id and checks that the blog exists and belongs to
// actor.
func (b *blogService) ownedBlogID(ctx context.Context, id string, actor models.TokenClaims) (string, error) {
	id, err := utils.ParseID(id)
	if err != nil {
		return "", err
	}

	current, err := b.blogRepository.GetBlogByID(ctx, id)
	if err != nil {
		return "", err
	}

	if actor.ID == "" || current.UserID != actor.ID {
		logger.FromContext(ctx).Warn().
			Str("func", "*blogService.ownedBlogID").
			Str("blog_id", id).
			Str("user_id", actor.ID).
			Msg("blog belongs to another user")
		return "", ErrForbidden
	}

	return id, nil
}

func (b *blogService) Stats(ctx context.Context) (models.BlogStats, error) {
	blogs, err := b.blogRepository.ListBlogs(ctx)
	if err != nil {
		return models.BlogStats{}, err
	}

	return models.BlogStats{
		Count:      len(blogs),
		TotalLikes: totalLikes(blogs),
		Favorite:   favoriteBlog(blogs),
	}, nil
}

func totalLikes(blogs []models.Blog) int {
	total := 0
	for _, blog := range blogs {
		total += blog.Likes
	}
	return total
}

// favoriteBlog returns the first blog with the most likes, or nil for an
// empty list.
func favoriteBlog(blogs []models.Blog) *models.FavoriteBlog {
	if len(blogs) == 0 {
		return nil
	}

	best := blogs[0]
	for _, blog := range blogs[1:] {
		if blog.Likes > best.Likes {
			best = blog
		}
	}

	return &models.FavoriteBlog{Title: best.Title, Author: best.Author, Likes: best.Likes}
}
