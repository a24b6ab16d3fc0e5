package service

import (
	"pubrank-go/internal/fetcher"
	"pubrank-go/internal/model"
	"pubrank-go/internal/utils"
)

const (
	// 本地标题与文献库标题的配对门槛
	matchTitleThreshold = 0.90
	// 两边年份允许的最大偏差
	matchYearSlack = 1
)

// MatchPublications 把本地出版物与文献库记录贪心配对
// 按提交顺序逐条找第一条可接受的记录，每条记录只能用一次
// 返回与pubs等长的下标切片，-1表示没配上
func MatchPublications(pubs []model.LocalPublication, records []fetcher.BibRecord) []int {
	normRecords := make([]string, len(records))
	for j, rec := range records {
		normRecords[j] = utils.NormalizeTitle(rec.Title)
	}

	used := make([]bool, len(records))
	assigned := make([]int, len(pubs))
	for i, pub := range pubs {
		assigned[i] = -1
		normTitle := utils.NormalizeTitle(pub.Title)
		if normTitle == "" {
			continue
		}
		for j := range records {
			if used[j] || !yearCompatible(pub.Year, records[j].Year) {
				continue
			}
			if utils.Similarity(normTitle, normRecords[j]) > matchTitleThreshold {
				assigned[i] = j
				used[j] = true
				break
			}
		}
	}
	return assigned
}

// yearCompatible 任一边年份未知即放行
func yearCompatible(a, b int) bool {
	if a <= 0 || b <= 0 {
		return true
	}
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= matchYearSlack
}
