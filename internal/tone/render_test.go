package tone

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("Ошибка создания файла: %v", err)
	}
	defer file.Close()

	if err := Render(file, 40, time.Second, 8000, DefaultVolume); err != nil {
		t.Fatalf("Ошибка рендеринга: %v", err)
	}

	info, err := file.Stat()
	if err != nil {
		t.Fatalf("Ошибка получения информации о файле: %v", err)
	}

	// 8000 сэмплов × 2 канала × 2 байта плюс заголовок
	if info.Size() <= 8000*4 {
		t.Errorf("Размер WAV слишком мал: %d байт", info.Size())
	}
}

func TestRenderInvalidFrequency(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("Ошибка создания файла: %v", err)
	}
	defer file.Close()

	if err := Render(file, 6000, time.Second, 8000, DefaultVolume); err == nil {
		t.Error("Ожидалась ошибка для частоты выше половины частоты дискретизации")
	}
}
