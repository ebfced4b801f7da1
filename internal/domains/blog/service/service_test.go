package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/blog/model"
	"portfolio-backend/internal/domains/blog/repository"
)

// fakeBlogRepo is an in-memory stand-in for the postgres repository.
type fakeBlogRepo struct {
	posts   []model.BlogPost
	nextID  int64
	listErr error
	getErr  error
	created []model.BlogPost
}

func (f *fakeBlogRepo) Create(_ context.Context, p *model.BlogPost) error {
	f.nextID++
	p.ID = f.nextID
	f.created = append(f.created, *p)
	f.posts = append(f.posts, *p)
	return nil
}

func (f *fakeBlogRepo) GetByID(_ context.Context, id int64) (*model.BlogPost, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for i := range f.posts {
		if f.posts[i].ID == id {
			p := f.posts[i]
			return &p, nil
		}
	}
	return nil, model.ErrBlogPostNotFound
}

func (f *fakeBlogRepo) GetPublishedByID(ctx context.Context, id int64) (*model.BlogPost, error) {
	p, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.IsPublished() {
		return nil, model.ErrBlogPostNotFound
	}
	return p, nil
}

func (f *fakeBlogRepo) List(_ context.Context, opts repository.ListOptions) ([]model.BlogPost, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]model.BlogPost, 0)
	for _, p := range f.posts {
		if opts.Status == "" || p.Status == opts.Status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeBlogRepo) Update(_ context.Context, p *model.BlogPost) error {
	for i := range f.posts {
		if f.posts[i].ID == p.ID {
			f.posts[i] = *p
			return nil
		}
	}
	return model.ErrBlogPostNotFound
}

func (f *fakeBlogRepo) Delete(_ context.Context, id int64) error {
	for i := range f.posts {
		if f.posts[i].ID == id {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return nil
		}
	}
	return model.ErrBlogPostNotFound
}

func (f *fakeBlogRepo) Count(_ context.Context) (int, error) {
	return len(f.posts), nil
}

func (f *fakeBlogRepo) CountPublished(_ context.Context) (int, error) {
	count := 0
	for _, p := range f.posts {
		if p.IsPublished() {
			count++
		}
	}
	return count, nil
}

func storedPosts() []model.BlogPost {
	return []model.BlogPost{
		{ID: 10, Title: "Fuzzing Basics", Excerpt: "Intro to fuzzing", Status: model.StatusPublished, Category: "Technical", Tags: []string{"fuzzing"}},
		{ID: 11, Title: "Draft Notes", Excerpt: "Unfinished", Status: model.StatusDraft, Category: "Technical"},
		{ID: 12, Title: "CTF Writeup", Excerpt: "Web challenge", Status: model.StatusPublished, Category: "Projects", Tags: []string{"ctf", "web"}},
	}
}

func validRequest() model.CreateBlogPostRequest {
	return model.CreateBlogPostRequest{
		Title:   "Getting Started: A Student's Journey!",
		Excerpt: "First steps",
		Content: "Body text",
		Status:  model.StatusDraft,
	}
}

func TestListPublic(t *testing.T) {
	ctx := context.Background()

	t.Run("serves only published store records", func(t *testing.T) {
		svc := NewBlogService(&fakeBlogRepo{posts: storedPosts()})

		resp, err := svc.ListPublic(ctx, model.ListBlogPostsQuery{})

		require.NoError(t, err)
		assert.Equal(t, "remote", resp.Source)
		require.Len(t, resp.Posts, 2)
		for _, p := range resp.Posts {
			assert.True(t, p.IsPublished())
		}
	})

	t.Run("empty store falls back to the full seed set", func(t *testing.T) {
		svc := NewBlogService(&fakeBlogRepo{})

		resp, err := svc.ListPublic(ctx, model.ListBlogPostsQuery{})

		require.NoError(t, err)
		assert.Equal(t, "fallback", resp.Source)
		assert.Len(t, resp.Posts, len(model.Seed()))
	})

	t.Run("read failure degrades to fallback instead of erroring", func(t *testing.T) {
		svc := NewBlogService(&fakeBlogRepo{listErr: errors.New("connection refused")})

		resp, err := svc.ListPublic(ctx, model.ListBlogPostsQuery{})

		require.NoError(t, err)
		assert.Equal(t, "fallback", resp.Source)
	})

	t.Run("category and search compose with AND", func(t *testing.T) {
		svc := NewBlogService(&fakeBlogRepo{posts: storedPosts()})

		resp, err := svc.ListPublic(ctx, model.ListBlogPostsQuery{Category: "Projects", Search: "web"})

		require.NoError(t, err)
		require.Len(t, resp.Posts, 1)
		assert.Equal(t, "CTF Writeup", resp.Posts[0].Title)
	})
}

func TestGetPublished(t *testing.T) {
	ctx := context.Background()

	t.Run("published store post is returned", func(t *testing.T) {
		svc := NewBlogService(&fakeBlogRepo{posts: storedPosts()})

		post, err := svc.GetPublished(ctx, 10)

		require.NoError(t, err)
		assert.Equal(t, "Fuzzing Basics", post.Title)
	})

	t.Run("missing id falls back to the seed post", func(t *testing.T) {
		svc := NewBlogService(&fakeBlogRepo{posts: storedPosts()})

		post, err := svc.GetPublished(ctx, 2)

		require.NoError(t, err)
		assert.Equal(t, "Understanding Network Security Basics", post.Title)
	})

	t.Run("read failure falls back to the seed post", func(t *testing.T) {
		svc := NewBlogService(&fakeBlogRepo{getErr: errors.New("connection refused")})

		post, err := svc.GetPublished(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, "Getting Started with Ethical Hacking: A Student's Journey", post.Title)
	})

	t.Run("unknown id with no seed match is not found", func(t *testing.T) {
		svc := NewBlogService(&fakeBlogRepo{posts: storedPosts()})

		_, err := svc.GetPublished(ctx, 99)

		assert.ErrorIs(t, err, model.ErrBlogPostNotFound)
	})
}

func TestCreatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects missing required fields before any write", func(t *testing.T) {
		repo := &fakeBlogRepo{}
		svc := NewBlogService(repo)

		_, err := svc.CreatePost(ctx, model.CreateBlogPostRequest{Title: "No body"})

		assert.Error(t, err)
		assert.Empty(t, repo.created, "no partial write on validation failure")
	})

	t.Run("derives slug and meta fields when blank", func(t *testing.T) {
		svc := NewBlogService(&fakeBlogRepo{})

		post, err := svc.CreatePost(ctx, validRequest())

		require.NoError(t, err)
		assert.Equal(t, "getting-started-a-students-journey", post.Slug)
		assert.Equal(t, post.Title, post.MetaTitle)
		assert.Equal(t, post.Excerpt, post.MetaDescription)
		assert.Equal(t, model.DefaultAuthorName, post.AuthorName)
		assert.Equal(t, model.DefaultReadTime, post.ReadTime)
	})

	t.Run("explicit slug is kept verbatim", func(t *testing.T) {
		svc := NewBlogService(&fakeBlogRepo{})

		req := validRequest()
		req.Slug = "my-own-slug"
		post, err := svc.CreatePost(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "my-own-slug", post.Slug)
	})

	t.Run("draft gets no publish date, published gets one", func(t *testing.T) {
		svc := NewBlogService(&fakeBlogRepo{})

		draft, err := svc.CreatePost(ctx, validRequest())
		require.NoError(t, err)
		assert.Nil(t, draft.PublishedAt)

		req := validRequest()
		req.Status = model.StatusPublished
		published, err := svc.CreatePost(ctx, req)
		require.NoError(t, err)
		require.NotNil(t, published.PublishedAt)
	})
}

func TestUpdatePostPublishStamp(t *testing.T) {
	ctx := context.Background()
	repo := &fakeBlogRepo{nextID: 100}
	svc := NewBlogService(repo)

	draft, err := svc.CreatePost(ctx, validRequest())
	require.NoError(t, err)
	require.Nil(t, draft.PublishedAt)

	publish := validRequest()
	publish.Status = model.StatusPublished

	t.Run("stamped on the transition into published", func(t *testing.T) {
		post, err := svc.UpdatePost(ctx, draft.ID, publish)

		require.NoError(t, err)
		require.NotNil(t, post.PublishedAt)
	})

	t.Run("re-saving a published post keeps the original date", func(t *testing.T) {
		before, err := svc.GetPost(ctx, draft.ID)
		require.NoError(t, err)
		require.NotNil(t, before.PublishedAt)

		after, err := svc.UpdatePost(ctx, draft.ID, publish)

		require.NoError(t, err)
		require.NotNil(t, after.PublishedAt)
		assert.Equal(t, *before.PublishedAt, *after.PublishedAt)
	})

	t.Run("moving back to draft clears the date", func(t *testing.T) {
		post, err := svc.UpdatePost(ctx, draft.ID, validRequest())

		require.NoError(t, err)
		assert.Nil(t, post.PublishedAt)
	})
}

func TestDeletePost(t *testing.T) {
	ctx := context.Background()
	repo := &fakeBlogRepo{posts: storedPosts()}
	svc := NewBlogService(repo)

	require.NoError(t, svc.DeletePost(ctx, 11))

	remaining, err := svc.ListAdmin(ctx)
	require.NoError(t, err)
	assert.Len(t, remaining, 2)

	assert.ErrorIs(t, svc.DeletePost(ctx, 11), model.ErrBlogPostNotFound)
}

func TestCounts(t *testing.T) {
	svc := NewBlogService(&fakeBlogRepo{posts: storedPosts()})

	total, published, err := svc.Counts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, 2, published)
}
