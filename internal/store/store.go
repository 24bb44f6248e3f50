// Package store persiste cada coleção como um arquivo JSON (array formatado,
// UTF-8, caracteres não-ASCII literais). Toda escrita é um overwrite do arquivo
// inteiro; um mutex por coleção serializa os ciclos read-modify-write para que
// escritas concorrentes no mesmo processo não se percam.
package store

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

type Collection string

const (
	Users         Collection = "users"
	Patients      Collection = "patients"
	Professionals Collection = "professionals"
	Appointments  Collection = "appointments"
	Attendances   Collection = "attendances"
	Records       Collection = "records"
	Notifications Collection = "notifications"
)

var AllCollections = []Collection{
	Users, Patients, Professionals, Appointments, Attendances, Records, Notifications,
}

type Store struct {
	dir string
	mu  map[Collection]*sync.Mutex
}

func New(dir string) *Store {
	mu := make(map[Collection]*sync.Mutex, len(AllCollections))
	for _, c := range AllCollections {
		mu[c] = &sync.Mutex{}
	}
	return &Store{dir: dir, mu: mu}
}

// Bootstrap cria o diretório de dados e um arquivo `[]` para cada coleção ausente.
func (s *Store) Bootstrap() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	for _, c := range AllCollections {
		p := s.path(c)
		if _, err := os.Stat(p); err == nil {
			continue
		}
		if err := os.WriteFile(p, []byte("[]"), 0o644); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) path(c Collection) string {
	return filepath.Join(s.dir, string(c)+".json")
}

func (s *Store) lock(c Collection) *sync.Mutex {
	if m, ok := s.mu[c]; ok {
		return m
	}
	// Coleção desconhecida não deve acontecer; falhar alto é melhor que corromper.
	panic("store: unknown collection " + string(c))
}

// Read decodifica a coleção em out. Arquivo ausente ou corrompido deixa out
// como estava (o chamador parte de uma slice vazia), nunca retorna erro.
func (s *Store) Read(c Collection, out interface{}) {
	m := s.lock(c)
	m.Lock()
	defer m.Unlock()
	s.readFile(c, out)
}

// Write sobrescreve a coleção inteira com v.
func (s *Store) Write(c Collection, v interface{}) error {
	m := s.lock(c)
	m.Lock()
	defer m.Unlock()
	return s.writeFile(c, v)
}

// Update executa fn com a coleção travada. load e save operam no arquivo sem
// reentrar no lock; é o único caminho seguro para read-modify-write.
func (s *Store) Update(c Collection, fn func(load func(out interface{}), save func(v interface{}) error) error) error {
	m := s.lock(c)
	m.Lock()
	defer m.Unlock()
	load := func(out interface{}) { s.readFile(c, out) }
	save := func(v interface{}) error { return s.writeFile(c, v) }
	return fn(load, save)
}

func (s *Store) readFile(c Collection, out interface{}) {
	b, err := os.ReadFile(s.path(c))
	if err != nil {
		return
	}
	_ = json.Unmarshal(b, out)
}

func (s *Store) writeFile(c Collection, v interface{}) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, string(c)+"-*.tmp")
	if err != nil {
		return err
	}
	name := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return err
	}
	return os.Rename(name, s.path(c))
}
