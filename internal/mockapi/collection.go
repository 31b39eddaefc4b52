package mockapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// collection is an in-memory table of one entity type. All access goes
// through the owning Server's mutex.
type collection[T any] struct {
	items  []T
	nextID int64

	// id reads the identity; setID stamps it on create.
	id    func(T) int64
	setID func(*T, int64)

	// match reports whether an item satisfies the search query.
	match func(T, string) bool

	// apply overlays a request's body onto an item. The zero value of dst
	// is passed on create; the stored item on update/patch. Defaults to
	// plain JSON decoding; banners override it to accept multipart too.
	apply func(req *http.Request, dst *T) error

	// beforeCreate optionally vetoes a create (e.g. duplicate names).
	// The returned message is sent with a 409.
	beforeCreate func(c *collection[T], candidate T) string
}

func jsonApply[T any](req *http.Request, dst *T) error {
	body, err := readBody(req)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, dst)
}

func (c *collection[T]) insert(item T) T {
	c.nextID++
	c.setID(&item, c.nextID)
	c.items = append(c.items, item)
	return item
}

func (c *collection[T]) find(id int64) (int, bool) {
	for i, it := range c.items {
		if c.id(it) == id {
			return i, true
		}
	}
	return 0, false
}

// registerCRUD mounts the standard list/get/create/update/patch/delete
// routes of one resource under path.
func registerCRUD[T any](s *Server, r chi.Router, path string, col *collection[T]) {
	r.Get("/"+path+"/", func(w http.ResponseWriter, req *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()

		q := req.URL.Query().Get("search")
		filtered := make([]T, 0, len(col.items))
		for _, it := range col.items {
			if q == "" || col.match == nil || col.match(it, q) {
				filtered = append(filtered, it)
			}
		}
		writePage(w, req, filtered)
	})

	r.Get("/"+path+"/{id}/", func(w http.ResponseWriter, req *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()

		i, ok := col.find(pathID(req))
		if !ok {
			writeError(w, http.StatusNotFound, path+" not found")
			return
		}
		writeData(w, http.StatusOK, col.items[i])
	})

	r.Post("/"+path+"/", func(w http.ResponseWriter, req *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()

		var item T
		if err := applyBody(req, col, &item); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if col.beforeCreate != nil {
			if msg := col.beforeCreate(col, item); msg != "" {
				writeError(w, http.StatusConflict, msg)
				return
			}
		}
		writeData(w, http.StatusCreated, col.insert(item))
	})

	handleUpdate := func(w http.ResponseWriter, req *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()

		i, ok := col.find(pathID(req))
		if !ok {
			writeError(w, http.StatusNotFound, path+" not found")
			return
		}
		item := col.items[i]
		if err := applyBody(req, col, &item); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		col.items[i] = item
		writeData(w, http.StatusOK, item)
	}
	r.Put("/"+path+"/{id}/", handleUpdate)
	r.Patch("/"+path+"/{id}/", handleUpdate)

	r.Delete("/"+path+"/{id}/", func(w http.ResponseWriter, req *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()

		i, ok := col.find(pathID(req))
		if !ok {
			writeError(w, http.StatusNotFound, path+" not found")
			return
		}
		col.items = append(col.items[:i], col.items[i+1:]...)
		writeData(w, http.StatusOK, nil)
	})
}

func applyBody[T any](req *http.Request, col *collection[T], dst *T) error {
	apply := col.apply
	if apply == nil {
		apply = jsonApply[T]
	}
	if err := apply(req, dst); err != nil {
		return fmt.Errorf("invalid body: %w", err)
	}
	return nil
}

func pathID(req *http.Request) int64 {
	id, _ := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
	return id
}
