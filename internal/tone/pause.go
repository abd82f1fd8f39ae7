package tone

import (
	"go.uber.org/zap"
)

// SetPaused переводит тон в состояние паузы или воспроизведения.
//
// При постановке на паузу предпочтительно приостанавливается выход целиком;
// если это не удалось, тон заглушается обнулением усиления. При возобновлении
// выход возобновляется, а усиление восстанавливается по частоте тона, если оно
// было обнулено или если возобновить выход не удалось. Флаг паузы меняется
// после применения выбранной стратегии. Совпадающее состояние ничего не делает.
func (s *Synthesizer) SetPaused(h *Handle, paused bool) {
	if h == nil || h.stopped || h.paused == paused {
		return
	}

	if paused {
		if err := h.output.Suspend(); err != nil {
			s.logger.Warn("не удалось приостановить выход, обнуляем усиление", zap.Error(err))
			h.setLevel(0)
			h.muted = true
		}
		h.paused = true
		s.logger.Debug("аудио на паузе", zap.Bool("muted", h.muted))
		return
	}

	if err := h.output.Resume(); err != nil {
		s.logger.Warn("не удалось возобновить выход, восстанавливаем усиление", zap.Error(err))
		s.restoreLevel(h)
	} else if h.muted {
		s.restoreLevel(h)
	}
	h.paused = false
	s.logger.Debug("аудио возобновлено")
}

func (s *Synthesizer) restoreLevel(h *Handle) {
	h.setLevel(s.Volume(h.frequency))
	h.muted = false
}
