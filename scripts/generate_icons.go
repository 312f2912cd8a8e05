//go:build ignore

// Скрипт для генерации иконки трея.
// Запуск: go run scripts/generate_icons.go
package main

import (
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
)

var (
	latin    = color.RGBA{40, 110, 200, 255} // Синий
	cyrillic = color.RGBA{200, 50, 50, 255}  // Красный
	arrow    = color.RGBA{255, 255, 255, 255}
)

func main() {
	dir := "embedded"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("Не удалось создать директорию %s: %v", dir, err)
	}

	path := filepath.Join(dir, "icon.png")
	if err := generateIcon(path); err != nil {
		log.Fatalf("Ошибка генерации %s: %v", path, err)
	}
	log.Printf("Создан: %s", path)
}

func generateIcon(path string) error {
	const size = 64
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	// Скруглённый квадрат: левая половина - латиница, правая - кириллица
	const margin, radius = 4, 10
	for y := margin; y < size-margin; y++ {
		for x := margin; x < size-margin; x++ {
			if !insideRounded(x, y, margin, size-margin-1, radius) {
				continue
			}
			if x < size/2 {
				img.Set(x, y, latin)
			} else {
				img.Set(x, y, cyrillic)
			}
		}
	}

	// Двунаправленная стрелка
	mid := size / 2
	for x := 16; x <= 47; x++ {
		for y := mid - 2; y <= mid+1; y++ {
			img.Set(x, y, arrow)
		}
	}
	for i := 0; i < 8; i++ {
		for y := mid - i; y <= mid+i-1; y++ {
			img.Set(12+i, y, arrow)
			img.Set(51-i, y, arrow)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}

func insideRounded(x, y, lo, hi, r int) bool {
	cx, cy := x, y
	switch {
	case x < lo+r:
		cx = lo + r
	case x > hi-r:
		cx = hi - r
	}
	switch {
	case y < lo+r:
		cy = lo + r
	case y > hi-r:
		cy = hi - r
	}
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= r*r
}
