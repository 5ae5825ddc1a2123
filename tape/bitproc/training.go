package bitproc

// processTraining accumulates consecutive matching inter-edge intervals
// until TrainingThreshold of them agree closely enough, at which point the
// average becomes the symbol clock and decode moves into the initial
// resync.
func (p *Processor) processTraining(frameIdx uint64, levelLen float64) {
	if p.symbolLen > 0 && absFloat(levelLen-p.symbolLen) < p.symbolLen*p.cfg.MaxBitDiff {
		p.trainingMatches = append(p.trainingMatches, frameIdx)
	} else {
		p.symbolLen = levelLen
		p.trainingStart = frameIdx
		p.trainingMatches = p.trainingMatches[:0]
	}

	if len(p.trainingMatches) == p.cfg.TrainingThreshold && p.symbolLen > p.cfg.MinBitLen {
		last := p.trainingMatches[len(p.trainingMatches)-1]
		p.symbolLen = float64(last-p.trainingStart) / float64(len(p.trainingMatches))

		if p.cfg.ContinuousResync {
			p.trainingStart = frameIdx
			p.edgeCnt = 0
		}
		p.trainingMatches = nil

		p.startResync(frameIdx, float64(maxInitialSyncSymbols-p.cfg.TrainingThreshold))
	}
}
