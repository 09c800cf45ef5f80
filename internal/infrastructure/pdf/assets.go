package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/disintegration/imaging"
)

// Rutas de imágenes relativas a la raíz de assets estáticos.
const (
	assetLogo          = "images/logo.png"
	assetSignature     = "images/signature.png"
	assetPaktechLogo   = "images/paktech-logo.png"
	assetTechnoLogo    = "images/techno-logo.png"
	defaultMaxImagePix = 600
)

var errNoAssets = errors.New("pdf: sin directorio de assets")

// Image raster normalizado a PNG de 8 bits listo para registrar en el PDF.
type Image struct {
	Name   string
	Data   []byte
	Width  int
	Height int
}

// AssetLoader carga logos y firmas desde un fs.FS, los reduce a un ancho máximo
// y los re-codifica como PNG. Las imágenes cargadas se guardan en memoria;
// los fallos no, para que un asset desplegado después se recoja sin reiniciar.
type AssetLoader struct {
	fsys     fs.FS
	maxWidth int

	mu    sync.Mutex
	cache map[string]*Image
}

// NewAssetLoader fsys nil deja el loader sin assets: todo cae en el texto alternativo.
func NewAssetLoader(fsys fs.FS) *AssetLoader {
	return &AssetLoader{fsys: fsys, maxWidth: defaultMaxImagePix, cache: make(map[string]*Image)}
}

// Load devuelve la imagen name o error si no existe o no se puede decodificar.
func (l *AssetLoader) Load(name string) (*Image, error) {
	if l == nil || l.fsys == nil {
		return nil, errNoAssets
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if img, ok := l.cache[name]; ok {
		return img, nil
	}

	raw, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("pdf: leer asset %s: %w", name, err)
	}
	src, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("pdf: decodificar asset %s: %w", name, err)
	}
	if src.Bounds().Dx() > l.maxWidth {
		src = imaging.Resize(src, l.maxWidth, 0, imaging.Lanczos)
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, src, imaging.PNG); err != nil {
		return nil, fmt.Errorf("pdf: codificar asset %s: %w", name, err)
	}

	img := &Image{
		Name:   name,
		Data:   buf.Bytes(),
		Width:  src.Bounds().Dx(),
		Height: src.Bounds().Dy(),
	}
	l.cache[name] = img
	return img, nil
}
