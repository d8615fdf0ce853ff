package storage

type IStorage interface {
	StoreObject(name string, object any) error
	RestoreObject(name string, out any) error
	Names() ([]string, error)
}
