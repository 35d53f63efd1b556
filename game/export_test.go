package game

const DiscardReportInterval = discardReportInterval
