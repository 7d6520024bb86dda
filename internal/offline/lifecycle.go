package offline

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
)

const (
	// RuntimeNamespace holds network-first API responses. It is
	// version-independent and survives activation.
	RuntimeNamespace = "runtime"

	staticPrefix = "static-"
)

// StaticNamespace names the static store for a cache version.
func StaticNamespace(version string) string {
	return staticPrefix + version
}

// Installer populates the versioned static store from a fixed asset
// manifest and retires stores left behind by previous versions.
type Installer struct {
	storage  Storage
	client   *http.Client
	version  string
	manifest []string
}

// NewInstaller creates an installer for the given cache version. The
// client is used as-is for manifest fetches; it must not route through
// the offline transport, or installation would read back its own cache.
func NewInstaller(storage Storage, client *http.Client, version string, manifest []string) *Installer {
	if client == nil {
		client = http.DefaultClient
	}
	return &Installer{
		storage:  storage,
		client:   client,
		version:  version,
		manifest: manifest,
	}
}

// Install fetches every manifest URL and stores the batch into the
// current version's static namespace. The step is all-or-nothing: every
// asset is fetched before anything is written, and a failed write tears
// the namespace back down. A partially populated static store would
// serve a broken asset set offline.
func (ins *Installer) Install(ctx context.Context) error {
	fetched := make(map[string]*CachedResponse, len(ins.manifest))
	for _, asset := range ins.manifest {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, asset, nil)
		if err != nil {
			return fmt.Errorf("precache %s: %w", asset, err)
		}
		resp, err := ins.client.Do(req)
		if err != nil {
			return fmt.Errorf("precache %s: %w", asset, err)
		}
		cr, err := Snapshot(resp)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("precache %s: %w", asset, err)
		}
		if cr.StatusCode < 200 || cr.StatusCode >= 300 {
			return fmt.Errorf("precache %s: unexpected status %d", asset, cr.StatusCode)
		}
		fetched[RequestKey(req)] = cr
	}

	namespace := StaticNamespace(ins.version)
	bucket := ins.storage.Open(namespace)
	for key, cr := range fetched {
		if err := bucket.Put(key, cr); err != nil {
			if delErr := ins.storage.DeleteNamespace(namespace); delErr != nil {
				log.Printf("Failed to clean up partial static store %s: %v", namespace, delErr)
			}
			return fmt.Errorf("populate static store %s: %w", namespace, err)
		}
	}

	log.Printf("Precached %d assets into %s", len(fetched), namespace)
	return nil
}

// Activate deletes every static namespace belonging to another version.
// The runtime namespace and the current static namespace are left
// untouched.
func (ins *Installer) Activate() error {
	current := StaticNamespace(ins.version)
	namespaces, err := ins.storage.ListNamespaces()
	if err != nil {
		return fmt.Errorf("list namespaces: %w", err)
	}
	for _, ns := range namespaces {
		if ns == current || !strings.HasPrefix(ns, staticPrefix) {
			continue
		}
		if err := ins.storage.DeleteNamespace(ns); err != nil {
			return fmt.Errorf("retire static store %s: %w", ns, err)
		}
		log.Printf("Retired static store %s", ns)
	}
	return nil
}
