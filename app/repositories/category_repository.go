package repositories

import (
	"fmt"

	"blogview/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerCategoryRepository implements CategoryRepository using BadgerDB
type BadgerCategoryRepository struct {
	db *badger.DB
}

// NewBadgerCategoryRepository creates a new BadgerCategoryRepository
func NewBadgerCategoryRepository(db *badger.DB) *BadgerCategoryRepository {
	return &BadgerCategoryRepository{db: db}
}

// Create creates a new category. Slugs are unique across categories;
// the uniqueness scan runs inside the write transaction so concurrent
// creates of the same slug conflict instead of both committing.
func (r *BadgerCategoryRepository) Create(category *models.Category) error {
	category.BeforeCreate()

	return r.db.Update(func(txn *badger.Txn) error {
		if err := ensureSlugFree(txn, category.Slug); err != nil {
			return err
		}

		id, err := getNextID(txn, CategorySeqKey)
		if err != nil {
			return err
		}
		category.ID = id

		data, err := marshalEntity(category)
		if err != nil {
			return err
		}

		key := []byte(fmt.Sprintf("%s%d", CategoryKeyPrefix, category.ID))
		return txn.Set(key, data)
	})
}

// ensureSlugFree scans stored categories within the transaction and
// fails when the slug is already taken. The iterator is closed before
// the caller writes.
func ensureSlugFree(txn *badger.Txn, slug string) error {
	it := txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()

	prefix := []byte(CategoryKeyPrefix)
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		var existing models.Category
		err := it.Item().Value(func(val []byte) error {
			return unmarshalEntity(val, &existing)
		})
		if err != nil {
			return fmt.Errorf("failed to unmarshal category: %v", err)
		}
		if existing.Slug == slug {
			return fmt.Errorf("category slug %q already taken", slug)
		}
	}
	return nil
}

// GetByID retrieves a category by ID
func (r *BadgerCategoryRepository) GetByID(id int) (*models.Category, error) {
	var category models.Category

	err := r.db.View(func(txn *badger.Txn) error {
		key := []byte(fmt.Sprintf("%s%d", CategoryKeyPrefix, id))
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &category)
		})
	})

	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetBySlug retrieves a category by its slug
func (r *BadgerCategoryRepository) GetBySlug(slug string) (*models.Category, error) {
	var category models.Category
	var found bool

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(CategoryKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &category)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal category: %v", err)
			}
			if category.Slug == slug {
				found = true
				break
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return &category, nil
}

// ListAll retrieves every stored category
func (r *BadgerCategoryRepository) ListAll() ([]*models.Category, error) {
	var categories []*models.Category

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(CategoryKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var category models.Category
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &category)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal category: %v", err)
			}
			categories = append(categories, &category)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return categories, nil
}

// Update updates an existing category
func (r *BadgerCategoryRepository) Update(category *models.Category) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := []byte(fmt.Sprintf("%s%d", CategoryKeyPrefix, category.ID))

		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		data, err := marshalEntity(category)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
}

// Delete deletes a category by ID
func (r *BadgerCategoryRepository) Delete(id int) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := []byte(fmt.Sprintf("%s%d", CategoryKeyPrefix, id))

		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return txn.Delete(key)
	})
}
