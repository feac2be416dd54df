package bot

import (
	"time"

	"github.com/pmurley/outlook-bot/internal/fantrax"
)

const transactionCheckInterval = 2 * time.Minute

// startTransactionMonitor starts the background transaction watcher. Any
// new league transaction means rosters or contracts moved, so every cached
// projection is stale and the snapshot gets flushed.
func (b *Bot) startTransactionMonitor() {
	go b.transactionMonitorLoop()
}

func (b *Bot) transactionMonitorLoop() {
	b.logger.Info("Starting transaction monitor")

	seen := make(map[string]bool)
	b.checkNewTransactions(seen, true)

	ticker := time.NewTicker(transactionCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			b.checkNewTransactions(seen, false)
		case <-b.stopChan:
			b.logger.Info("Stopping transaction monitor")
			return
		}
	}
}

// checkNewTransactions fetches the transaction feed and flushes the
// snapshot cache when something new landed. The first pass only seeds the
// seen set.
func (b *Bot) checkNewTransactions(seen map[string]bool, firstRun bool) {
	client, err := fantrax.NewFantraxClient(b.config.FantraxLeagueID, false)
	if err != nil {
		b.logger.Error("Failed to create Fantrax client:", err)
		return
	}

	transactions, err := client.GetTransactions()
	if err != nil {
		b.logger.Error("Failed to fetch transactions from Fantrax:", err)
		return
	}

	newCount := 0
	for _, tx := range transactions {
		if !seen[tx.ID] {
			seen[tx.ID] = true
			newCount++
		}
	}

	if firstRun {
		b.logger.Info("Transaction monitor primed with ", len(seen), " transactions")
		return
	}

	if newCount > 0 {
		b.logger.Info("Detected ", newCount, " new league transactions, flushing snapshot cache")
		b.dataCache.Flush()
	}
}
