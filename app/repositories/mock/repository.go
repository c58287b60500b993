package mock

import (
	"fmt"
	"sync"

	"blogview/app/models"
	"blogview/app/repositories"
)

type PostRepository struct {
	posts  map[int]*models.Post
	nextID int
	mutex  sync.RWMutex
}

type CommentRepository struct {
	comments map[int]*models.Comment
	nextID   int
	mutex    sync.RWMutex
}

type CategoryRepository struct {
	categories map[int]*models.Category
	nextID     int
	mutex      sync.RWMutex
}

type LocationRepository struct {
	locations map[int]*models.Location
	nextID    int
	mutex     sync.RWMutex
}

type UserRepository struct {
	users  map[int]*models.User
	nextID int
	mutex  sync.RWMutex
}

func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts:  make(map[int]*models.Post),
		nextID: 1,
	}
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{
		comments: make(map[int]*models.Comment),
		nextID:   1,
	}
}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{
		categories: make(map[int]*models.Category),
		nextID:     1,
	}
}

func NewLocationRepository() *LocationRepository {
	return &LocationRepository{
		locations: make(map[int]*models.Location),
		nextID:    1,
	}
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:  make(map[int]*models.User),
		nextID: 1,
	}
}

// PostRepository implementation

func (m *PostRepository) Create(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post.ID = m.nextID
	m.nextID++
	post.BeforeCreate()
	m.posts[post.ID] = post
	return nil
}

func (m *PostRepository) GetByID(id int) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return post, nil
}

func (m *PostRepository) ListAll() ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var posts []*models.Post
	for id := 1; id < m.nextID; id++ {
		if post, exists := m.posts[id]; exists {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

func (m *PostRepository) ListByAuthor(authorID int) ([]*models.Post, error) {
	all, _ := m.ListAll()
	var posts []*models.Post
	for _, post := range all {
		if post.AuthorID == authorID {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

func (m *PostRepository) ListByCategory(categoryID int) ([]*models.Post, error) {
	all, _ := m.ListAll()
	var posts []*models.Post
	for _, post := range all {
		if post.CategoryID == categoryID {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

func (m *PostRepository) Update(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[post.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.posts[post.ID] = post
	return nil
}

func (m *PostRepository) Delete(id int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

// CommentRepository implementation

func (m *CommentRepository) Create(comment *models.Comment) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	comment.ID = m.nextID
	m.nextID++
	comment.BeforeCreate()
	m.comments[comment.ID] = comment
	return nil
}

func (m *CommentRepository) GetByID(id int) (*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	comment, exists := m.comments[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return comment, nil
}

func (m *CommentRepository) GetOwned(id, authorID int) (*models.Comment, error) {
	comment, err := m.GetByID(id)
	if err != nil {
		return nil, err
	}
	if comment.AuthorID != authorID {
		return nil, repositories.ErrNotFound
	}
	return comment, nil
}

func (m *CommentRepository) ListByPost(postID int) ([]*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var comments []*models.Comment
	for id := 1; id < m.nextID; id++ {
		if comment, exists := m.comments[id]; exists && comment.PostID == postID {
			comments = append(comments, comment)
		}
	}
	return comments, nil
}

func (m *CommentRepository) CountByPost(postID int) (int, error) {
	comments, err := m.ListByPost(postID)
	if err != nil {
		return 0, err
	}
	return len(comments), nil
}

func (m *CommentRepository) Update(comment *models.Comment) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.comments[comment.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.comments[comment.ID] = comment
	return nil
}

func (m *CommentRepository) Delete(id int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.comments[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.comments, id)
	return nil
}

// CategoryRepository implementation

func (m *CategoryRepository) Create(category *models.Category) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	category.BeforeCreate()
	for _, existing := range m.categories {
		if existing.Slug == category.Slug {
			return fmt.Errorf("category slug %q already taken", category.Slug)
		}
	}

	category.ID = m.nextID
	m.nextID++
	m.categories[category.ID] = category
	return nil
}

func (m *CategoryRepository) GetByID(id int) (*models.Category, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	category, exists := m.categories[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return category, nil
}

func (m *CategoryRepository) GetBySlug(slug string) (*models.Category, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, category := range m.categories {
		if category.Slug == slug {
			return category, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *CategoryRepository) ListAll() ([]*models.Category, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var categories []*models.Category
	for id := 1; id < m.nextID; id++ {
		if category, exists := m.categories[id]; exists {
			categories = append(categories, category)
		}
	}
	return categories, nil
}

func (m *CategoryRepository) Update(category *models.Category) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.categories[category.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.categories[category.ID] = category
	return nil
}

func (m *CategoryRepository) Delete(id int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.categories[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.categories, id)
	return nil
}

// LocationRepository implementation

func (m *LocationRepository) Create(location *models.Location) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	location.ID = m.nextID
	m.nextID++
	location.BeforeCreate()
	m.locations[location.ID] = location
	return nil
}

func (m *LocationRepository) GetByID(id int) (*models.Location, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	location, exists := m.locations[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return location, nil
}

func (m *LocationRepository) ListAll() ([]*models.Location, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var locations []*models.Location
	for id := 1; id < m.nextID; id++ {
		if location, exists := m.locations[id]; exists {
			locations = append(locations, location)
		}
	}
	return locations, nil
}

func (m *LocationRepository) Update(location *models.Location) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.locations[location.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.locations[location.ID] = location
	return nil
}

func (m *LocationRepository) Delete(id int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.locations[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.locations, id)
	return nil
}

// UserRepository implementation

func (m *UserRepository) Create(user *models.User) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, existing := range m.users {
		if existing.Username == user.Username {
			return fmt.Errorf("username %q already taken", user.Username)
		}
	}

	user.ID = m.nextID
	m.nextID++
	user.BeforeCreate()
	m.users[user.ID] = user
	return nil
}

func (m *UserRepository) GetByID(id int) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	user, exists := m.users[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func (m *UserRepository) GetByUsername(username string) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, user := range m.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *UserRepository) Update(user *models.User) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.users[user.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.users[user.ID] = user
	return nil
}
